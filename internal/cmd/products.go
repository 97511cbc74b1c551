package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sabinstha/brewdash/internal/catalog"
)

var (
	productsSearch      string
	productsSubCategory int
	productsFeatured    string
	productsPage        int
	productsPageSize    int

	productName        string
	productDescription string
	productPrice       float64
	productSubCategory int
	productFeatured    bool
	productStock       int
	productCost        float64
	productRedeemable  bool
	productPoints      int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with filters and pagination",
	RunE:  runProductsList,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE:  runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsDelete,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)

	productsListCmd.Flags().StringVar(&productsSearch, "search", "", "Substring match on name and description")
	productsListCmd.Flags().IntVar(&productsSubCategory, "subcategory", 0, "Filter by subcategory id (0 = all)")
	productsListCmd.Flags().StringVar(&productsFeatured, "featured", catalog.FeaturedAll, "all, featured or regular")
	productsListCmd.Flags().IntVar(&productsPage, "page", 1, "Page number")
	productsListCmd.Flags().IntVar(&productsPageSize, "page-size", 0, "Items per page (defaults from config)")

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().Float64Var(&productPrice, "price", 0, "Selling price")
		c.Flags().IntVar(&productSubCategory, "subcategory", 0, "Subcategory id")
		c.Flags().BoolVar(&productFeatured, "featured", false, "Feature the product")
		c.Flags().IntVar(&productStock, "stock", 0, "Stock count")
		c.Flags().Float64Var(&productCost, "cost", 0, "Unit cost")
		c.Flags().BoolVar(&productRedeemable, "redeemable", false, "Allow loyalty redemption")
		c.Flags().IntVar(&productPoints, "points", 0, "Points required to redeem")
	}
	productsCreateCmd.MarkFlagRequired("name")
	productsCreateCmd.MarkFlagRequired("subcategory")
}

func newCatalogStore(e *env, pageSize int) *catalog.Store {
	if pageSize <= 0 {
		pageSize = e.cfg.Catalog.PageSize
	}
	return catalog.NewStore(e.api, pageSize)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if err := e.requireAuth(); err != nil {
		return err
	}

	store := newCatalogStore(e, productsPageSize)
	if err := store.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store.SetFilter(catalog.Filter{
		Search:        productsSearch,
		SubCategoryID: productsSubCategory,
		Featured:      productsFeatured,
	})
	store.SetPage(productsPage)

	items, pageIndex, totalPages := store.VisibleProducts()
	if len(items) == 0 {
		fmt.Println("📭 No products match the current filters")
		return nil
	}

	fmt.Println(strings.Repeat("─", 72))
	for _, p := range items {
		label := p.CategoryName
		if p.SubCategoryName != "" {
			label += " > " + p.SubCategoryName
		}
		star := " "
		if p.IsFeatured {
			star = "⭐"
		}
		fmt.Printf("%s #%s %-28s %8.2f  stock %3d  %s\n", star, p.ID, p.Name, p.Price, p.Stock, label)
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("📄 Page %d of %d\n", pageIndex, totalPages)
	return nil
}

func runProductsCreate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if err := e.requireAuth(); err != nil {
		return err
	}

	store := newCatalogStore(e, 0)
	if err := store.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	created, err := store.Create(cmd.Context(), catalog.Draft{
		Name:             productName,
		Description:      productDescription,
		Price:            productPrice,
		SubCategory:      productSubCategory,
		IsFeatured:       productFeatured,
		Stock:            productStock,
		Cost:             productCost,
		IsRedeemable:     productRedeemable,
		RedemptionPoints: productPoints,
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	fmt.Printf("✅ Created #%s %s (%s > %s)\n", created.ID, created.Name, created.CategoryName, created.SubCategoryName)
	return nil
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if err := e.requireAuth(); err != nil {
		return err
	}

	// only flags the operator actually set go into the patch
	var patch catalog.Patch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &productName
	}
	if flags.Changed("description") {
		patch.Description = &productDescription
	}
	if flags.Changed("price") {
		patch.Price = &productPrice
	}
	if flags.Changed("subcategory") {
		patch.SubCategory = &productSubCategory
	}
	if flags.Changed("featured") {
		patch.IsFeatured = &productFeatured
	}
	if flags.Changed("stock") {
		patch.Stock = &productStock
	}
	if flags.Changed("cost") {
		patch.Cost = &productCost
	}
	if flags.Changed("redeemable") {
		patch.IsRedeemable = &productRedeemable
	}
	if flags.Changed("points") {
		patch.RedemptionPoints = &productPoints
	}

	store := newCatalogStore(e, 0)
	if err := store.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	updated, err := store.Update(cmd.Context(), args[0], patch)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	fmt.Printf("✅ Updated #%s %s\n", updated.ID, updated.Name)
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	if err := e.requireAuth(); err != nil {
		return err
	}

	store := newCatalogStore(e, 0)
	if err := store.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := store.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	fmt.Printf("✅ Deleted #%s\n", args[0])
	return nil
}
