package catalog

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sabinstha/brewdash/internal/api"
)

// Resolver fetches the three catalog collections and joins them into a
// consistent view model.
type Resolver struct {
	api *api.Client
}

func NewResolver(client *api.Client) *Resolver {
	return &Resolver{api: client}
}

// Resolve issues the category, subcategory and product fetches concurrently
// and joins them once all three have settled. Any single failure fails the
// whole resolution; a product list without working category names is not
// worth surfacing.
func (r *Resolver) Resolve(ctx context.Context) (*Snapshot, error) {
	var (
		cats []Category
		subs []SubCategory
		raws []RawProduct
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.fetch(ctx, "/api/category/", &cats)
	})
	g.Go(func() error {
		return r.fetch(ctx, "/api/subcategory/", &subs)
	})
	g.Go(func() error {
		return r.fetch(ctx, "/api/products/", &raws)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Categories:    cats,
		SubCategories: subs,
		subsByID:      make(map[int]SubCategory, len(subs)),
		catsByID:      make(map[int]Category, len(cats)),
	}
	for _, sub := range subs {
		snap.subsByID[sub.ID] = sub
	}
	for _, cat := range cats {
		snap.catsByID[cat.ID] = cat
	}

	// Products keep the order the API returned them in
	snap.Products = make([]Product, 0, len(raws))
	for _, raw := range raws {
		snap.Products = append(snap.Products, MapProduct(raw, snap.subsByID, snap.catsByID))
	}

	return snap, nil
}

// SubCategoriesOf fetches only the subcategories of one category, for the
// cascading category picker on the product form.
func (r *Resolver) SubCategoriesOf(ctx context.Context, categoryID int) ([]SubCategory, error) {
	var subs []SubCategory
	if err := r.fetch(ctx, "/api/subcategory/?category="+strconv.Itoa(categoryID), &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *Resolver) fetch(ctx context.Context, path string, out any) error {
	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// MapProduct is the single join point between a raw API record and the view
// model. A dangling subcategory or category reference degrades to empty
// labels instead of failing the product; a record with no server identifier
// gets a client-generated placeholder ID.
func MapProduct(raw RawProduct, subsByID map[int]SubCategory, catsByID map[int]Category) Product {
	p := Product{
		Name:             raw.Name,
		Description:      raw.Description,
		Price:            raw.Price,
		SubCategoryID:    raw.SubCategory,
		IsFeatured:       raw.IsFeatured,
		Stock:            raw.Stock,
		Cost:             raw.Cost,
		ImageURL:         raw.Image,
		IsRedeemable:     raw.IsRedeemable,
		RedemptionPoints: raw.RedemptionPoints,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}

	if raw.ID != 0 {
		p.ID = formatID(raw.ID)
	} else {
		p.ID = "pending-" + uuid.NewString()
	}

	if sub, ok := subsByID[raw.SubCategory]; ok {
		p.SubCategoryName = sub.Name
		if cat, ok := catsByID[sub.CategoryID]; ok {
			p.CategoryName = cat.Name
		}
	}

	return p
}
