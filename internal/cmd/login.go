package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/auth"
)

var (
	loginPhone string
	loginOtp   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with phone number and OTP",
	Long: `Sign in to the admin API. The flow has two steps: the phone number
requests a one-time code, the code is exchanged for a bearer token which is
stored under the session directory for subsequent commands.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginOtp, "otp", "", "One-time code (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	ctrl := auth.NewController(e.api, e.sess, navigateTo)
	reader := bufio.NewReader(os.Stdin)

	phone := loginPhone
	if phone == "" {
		fmt.Print("📱 Phone number: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read phone number: %w", err)
		}
		phone = strings.TrimSpace(line)
	}

	if err := ctrl.SubmitPhone(cmd.Context(), phone); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("📨 Code sent to %s\n", ctrl.Phone())

	code := loginOtp
	if code == "" {
		fmt.Print("🔑 6-digit code: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read code: %w", err)
		}
		code = strings.TrimSpace(line)
	}

	if err := ctrl.SubmitOtp(cmd.Context(), code); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Println("✅ Logged in")
	return nil
}
