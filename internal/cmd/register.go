package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/account"
)

var (
	registerName    string
	registerPhone   string
	registerEmail   string
	registerPicture string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new user account",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email (optional)")
	registerCmd.Flags().StringVar(&registerPicture, "picture", "", "Path to a profile picture (optional)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("phone")
}

func runRegister(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	in := account.RegisterInput{
		FullName:    registerName,
		PhoneNumber: registerPhone,
		Email:       registerEmail,
	}
	if registerPicture != "" {
		f, err := os.Open(registerPicture)
		if err != nil {
			return fmt.Errorf("failed to open picture: %w", err)
		}
		defer f.Close()
		in.ProfilePicture = f
		in.PictureName = filepath.Base(registerPicture)
	}

	user, err := account.NewClient(e.api).Register(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("✅ Registered %s (#%d), now run 'brewdash login'\n", user.FullName, user.ID)
	return nil
}
