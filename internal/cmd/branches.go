package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/branches"
)

var (
	branchName    string
	branchAddress string
	branchPhone   string
	branchActive  bool
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Manage branches",
}

var branchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		all, err := branches.NewClient(e.api).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list branches: %w", err)
		}
		for _, b := range all {
			mark := "🟢"
			if !b.IsActive {
				mark = "🔴"
			}
			fmt.Printf("%s #%d %-24s %s\n", mark, b.ID, b.Name, b.Address)
		}
		return nil
	},
}

var branchesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		b, err := branches.NewClient(e.api).Create(cmd.Context(), branches.Draft{
			Name:     branchName,
			Address:  branchAddress,
			Phone:    branchPhone,
			IsActive: branchActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create branch: %w", err)
		}
		fmt.Printf("✅ Created branch #%d %s\n", b.ID, b.Name)
		return nil
	},
}

var branchesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a branch",
	Args:  cobra.ExactArgs(1),
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
			return fmt.Errorf("invalid branch id %q", args[0])
		}

		var patch branches.Patch
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &branchName
		}
		if flags.Changed("address") {
			patch.Address = &branchAddress
		}
		if flags.Changed("phone") {
			patch.Phone = &branchPhone
		}
		if flags.Changed("active") {
			patch.IsActive = &branchActive
		}

		b, err := branches.NewClient(e.api).Update(cmd.Context(), id, patch)
		if err != nil {
			return fmt.Errorf("failed to update branch: %w", err)
		}
		fmt.Printf("✅ Updated branch #%d %s\n", b.ID, b.Name)
		return nil
	},
}

var branchesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a branch",
	Args:  cobra.ExactArgs(1),
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
			return fmt.Errorf("invalid branch id %q", args[0])
		}
		if err := branches.NewClient(e.api).Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete branch: %w", err)
		}
		fmt.Printf("✅ Deleted branch #%d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(branchesCmd)
	branchesCmd.AddCommand(branchesListCmd, branchesCreateCmd, branchesUpdateCmd, branchesDeleteCmd)

	for _, c := range []*cobra.Command{branchesCreateCmd, branchesUpdateCmd} {
		c.Flags().StringVar(&branchName, "name", "", "Branch name")
		c.Flags().StringVar(&branchAddress, "address", "", "Street address")
		c.Flags().StringVar(&branchPhone, "phone", "", "Contact number")
		c.Flags().BoolVar(&branchActive, "active", true, "Branch is open")
	}
	branchesCreateCmd.MarkFlagRequired("name")
	branchesCreateCmd.MarkFlagRequired("address")
}
