package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/catalog"
	"github.com/sabinstha/brewdash/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local read-only dashboard",
	Long: `Serve a small local HTTP surface for dashboards:
- GET /api/health   liveness plus session state
- GET /api/catalog  one full catalog resolution as JSON`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Brewdash starting...")

	e, err := newEnv()
	if err != nil {
		return err
	}

	srv := server.NewServer(catalog.NewResolver(e.api), e.sess)

	fmt.Printf("🌐 Listening on %s...\n", e.cfg.Server.Addr)
	if err := srv.Start(e.cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
