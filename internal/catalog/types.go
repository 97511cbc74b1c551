package catalog

import "strconv"

// Category as served by /api/category/. Immutable within a session.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubCategory as served by /api/subcategory/. References exactly one
// category; the reference may dangle when the category list is stale.
type SubCategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"category"`
}

// RawProduct is the wire shape served by /api/products/.
type RawProduct struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	SubCategory      int     `json:"sub_category"`
	IsFeatured       bool    `json:"is_featured"`
	Stock            int     `json:"stock"`
	Cost             float64 `json:"cost"`
	Image            *string `json:"image"`
	IsRedeemable     bool    `json:"is_redeemable"`
	RedemptionPoints int     `json:"redemption_points"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// Product is the joined view model rendered by the products screen. The ID is
// a string so server identifiers stay interchangeable with client-generated
// placeholders.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	SubCategoryID    int     `json:"subCategoryId"`
	SubCategoryName  string  `json:"subCategoryName"`
	CategoryName     string  `json:"categoryName"`
	IsFeatured       bool    `json:"isFeatured"`
	Stock            int     `json:"stock"`
	Cost             float64 `json:"cost"`
	ImageURL         *string `json:"imageUrl"`
	IsRedeemable     bool    `json:"isRedeemable"`
	RedemptionPoints int     `json:"redemptionPoints"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// Draft is the payload for creating a product. Validated locally before any
// network call.
type Draft struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"gte=0"`
	SubCategory      int     `json:"sub_category" validate:"required"`
	IsFeatured       bool    `json:"is_featured"`
	Stock            int     `json:"stock" validate:"gte=0"`
	Cost             float64 `json:"cost" validate:"gte=0"`
	IsRedeemable     bool    `json:"is_redeemable"`
	RedemptionPoints int     `json:"redemption_points" validate:"gte=0"`
}

// Patch is a partial update; nil fields are left untouched server-side.
type Patch struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	SubCategory      *int     `json:"sub_category,omitempty"`
	IsFeatured       *bool    `json:"is_featured,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
	Cost             *float64 `json:"cost,omitempty"`
	IsRedeemable     *bool    `json:"is_redeemable,omitempty"`
	RedemptionPoints *int     `json:"redemption_points,omitempty"`
}

// Snapshot is one consistent resolution of the catalog. It is rebuilt in full
// on every refresh and never persisted, so a renamed category can never leak
// a stale label into a product row.
type Snapshot struct {
	Categories    []Category    `json:"categories"`
	SubCategories []SubCategory `json:"subcategories"`
	Products      []Product     `json:"products"`

	subsByID map[int]SubCategory
	catsByID map[int]Category
}

// SubCategoryByID looks up a subcategory from this resolution's index.
func (s *Snapshot) SubCategoryByID(id int) (SubCategory, bool) {
	sub, ok := s.subsByID[id]
	return sub, ok
}

// CategoryByID looks up a category from this resolution's index.
func (s *Snapshot) CategoryByID(id int) (Category, bool) {
	cat, ok := s.catsByID[id]
	return cat, ok
}

func formatID(id int) string {
	return strconv.Itoa(id)
}
