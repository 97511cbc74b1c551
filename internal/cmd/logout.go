package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		auth.NewController(e.api, e.sess, navigateTo).Logout()
		fmt.Println("✅ Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
