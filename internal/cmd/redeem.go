package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/redeem"
)

var (
	offerTitle   string
	offerProduct int
	offerPoints  int
	offerActive  bool
)

var redeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Manage loyalty redemption offers and requests",
}

var redeemOffersCmd = &cobra.Command{
	Use:   "offers",
	Short: "List redemption offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		offers, err := redeem.NewClient(e.api).ListOffers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list offers: %w", err)
		}
		for _, o := range offers {
			mark := "🟢"
			if !o.IsActive {
				mark = "🔴"
			}
			fmt.Printf("%s #%d %-28s product %d  ⭐ %d points\n", mark, o.ID, o.Title, o.Product, o.PointsRequired)
		}
		return nil
	},
}

var redeemOfferCreateCmd = &cobra.Command{
	Use:   "create-offer",
	Short: "Create a redemption offer",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		o, err := redeem.NewClient(e.api).CreateOffer(cmd.Context(), redeem.OfferDraft{
			Title:          offerTitle,
			Product:        offerProduct,
			PointsRequired: offerPoints,
			IsActive:       offerActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create offer: %w", err)
		}
		fmt.Printf("✅ Created offer #%d %s\n", o.ID, o.Title)
		return nil
	},
}

var redeemOfferUpdateCmd = &cobra.Command{
	Use:   "update-offer <id>",
	Short: "Replace a redemption offer",
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
			return fmt.Errorf("invalid offer id %q", args[0])
		}
		o, err := redeem.NewClient(e.api).UpdateOffer(cmd.Context(), id, redeem.OfferDraft{
			Title:          offerTitle,
			Product:        offerProduct,
			PointsRequired: offerPoints,
			IsActive:       offerActive,
		})
		if err != nil {
			return fmt.Errorf("failed to update offer: %w", err)
		}
		fmt.Printf("✅ Updated offer #%d %s\n", o.ID, o.Title)
		return nil
	},
}

var redeemOfferDeleteCmd = &cobra.Command{
	Use:   "delete-offer <id>",
	Short: "Delete a redemption offer",
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
			return fmt.Errorf("invalid offer id %q", args[0])
		}
		if err := redeem.NewClient(e.api).DeleteOffer(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete offer: %w", err)
		}
		fmt.Printf("✅ Deleted offer #%d\n", id)
		return nil
	},
}

var redeemRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List redemption requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.requireAuth(); err != nil {
			return err
		}

		reqs, err := redeem.NewClient(e.api).ListRequests(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list requests: %w", err)
		}
		if len(reqs) == 0 {
			fmt.Println("📭 No redemption requests")
			return nil
		}
		for _, r := range reqs {
			fmt.Printf("🎁 #%d user %d offer %d  %-10s %s\n", r.ID, r.User, r.Offer, r.Status, r.CreatedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redeemCmd)
	redeemCmd.AddCommand(redeemOffersCmd, redeemOfferCreateCmd, redeemOfferUpdateCmd, redeemOfferDeleteCmd, redeemRequestsCmd)

	for _, c := range []*cobra.Command{redeemOfferCreateCmd, redeemOfferUpdateCmd} {
		c.Flags().StringVar(&offerTitle, "title", "", "Offer title")
		c.Flags().IntVar(&offerProduct, "product", 0, "Product id the offer redeems")
		c.Flags().IntVar(&offerPoints, "points", 0, "Points required")
		c.Flags().BoolVar(&offerActive, "active", true, "Offer is live")
	}
	redeemOfferCreateCmd.MarkFlagRequired("title")
	redeemOfferCreateCmd.MarkFlagRequired("product")
	redeemOfferCreateCmd.MarkFlagRequired("points")
}
