package shopsight

import "context"

// HeroProductCount is the size of the hero subset: the catalog prefix used
// for highlight display.
const HeroProductCount = 5

// Product represents a single product mapped from the products feed.
type Product struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Price       string           `json:"price,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Variants    []map[string]any `json:"variants,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	ProductType string           `json:"productType,omitempty"`
	Vendor      string           `json:"vendor,omitempty"`
	Handle      string           `json:"handle,omitempty"`
	URL         string           `json:"url,omitempty"`
	Available   bool             `json:"available"`
	CreatedAt   string           `json:"createdAt,omitempty"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
}

// ProductCatalog holds the full mapped catalog plus derived views.
//
// Invariants: TotalCount equals len(Catalog); HeroProducts is a prefix of
// Catalog no longer than HeroProductCount; Categories contains the unique
// non-empty ProductType values in first-seen order.
type ProductCatalog struct {
	TotalCount   int              `json:"totalCount"`
	HeroProducts []Product        `json:"heroProducts,omitempty"`
	Catalog      []Product        `json:"catalog,omitempty"`
	Categories   []string         `json:"categories,omitempty"`
	Collections  []map[string]any `json:"collections,omitempty"`
}

// CatalogService retrieves and normalizes a store's product feed.
type CatalogService interface {
	// FetchCatalog fetches {base}/products.json and maps it into a
	// ProductCatalog, keeping at most maxProducts products. Any fetch or
	// parse failure yields an empty catalog, never an error.
	FetchCatalog(ctx context.Context, baseURL string, maxProducts int) ProductCatalog
}
