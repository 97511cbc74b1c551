package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/account"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		user, err := account.NewClient(e.api).Profile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}

		fmt.Printf("👤 %s\n", user.FullName)
		fmt.Printf("   📱 %s\n", user.PhoneNumber)
		if user.Email != "" {
			fmt.Printf("   ✉️  %s\n", user.Email)
		}
		fmt.Printf("   ⭐ %d points\n", user.Points)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
