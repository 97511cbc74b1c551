package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/orders"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Track and transition orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		all, err := orders.NewClient(e.api).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}
		if len(all) == 0 {
			fmt.Println("📭 No orders")
			return nil
		}
		for _, o := range all {
			fmt.Printf("🧾 #%d branch %d  %-10s %8.2f  %s\n", o.ID, o.Branch, o.Status, o.TotalPrice, o.CreatedAt)
		}
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set an order's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		o, err := orders.NewClient(e.api).SetStatus(cmd.Context(), id, args[1])
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		fmt.Printf("✅ Order #%d is now %s\n", o.ID, o.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersStatusCmd)
}
