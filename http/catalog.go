package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fwojciec/shopsight"
)

// Ensure CatalogService implements shopsight.CatalogService at compile time.
var _ shopsight.CatalogService = (*CatalogService)(nil)

// CatalogService fetches and normalizes a store's products feed.
type CatalogService struct {
	fetcher shopsight.Fetcher
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService. The logger may be nil.
func NewCatalogService(fetcher shopsight.Fetcher, logger *slog.Logger) *CatalogService {
	return &CatalogService{fetcher: fetcher, logger: logger}
}

type rawProduct struct {
	ID          json.Number      `json:"id"`
	Title       string           `json:"title"`
	BodyHTML    string           `json:"body_html"`
	Handle      string           `json:"handle"`
	ProductType string           `json:"product_type"`
	Vendor      string           `json:"vendor"`
	Tags        json.RawMessage  `json:"tags"`
	Images      []struct{ Src string `json:"src"` } `json:"images"`
	Variants    []map[string]any `json:"variants"`
	PublishedAt *string          `json:"published_at"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type productsFeed struct {
	Products []rawProduct `json:"products"`
}

// FetchCatalog fetches {base}/products.json and maps it into a
// ProductCatalog, keeping at most maxProducts products. Any fetch or parse
// failure degrades to an empty catalog.
func (s *CatalogService) FetchCatalog(ctx context.Context, baseURL string, maxProducts int) shopsight.ProductCatalog {
	if maxProducts <= 0 {
		maxProducts = shopsight.DefaultMaxProducts
	}

	body, err := s.fetcher.Fetch(ctx, buildEndpoint(baseURL, "/products.json"))
	if err != nil {
		s.warn("failed to fetch products feed", baseURL, err)
		return shopsight.ProductCatalog{}
	}

	var feed productsFeed
	if err := json.Unmarshal([]byte(body), &feed); err != nil {
		s.warn("failed to parse products feed", baseURL, err)
		return shopsight.ProductCatalog{}
	}

	raw := feed.Products
	if len(raw) > maxProducts {
		raw = raw[:maxProducts]
	}

	catalog := make([]shopsight.Product, 0, len(raw))
	for _, rp := range raw {
		catalog = append(catalog, mapProduct(baseURL, rp))
	}

	hero := catalog
	if len(hero) > shopsight.HeroProductCount {
		hero = hero[:shopsight.HeroProductCount]
	}

	return shopsight.ProductCatalog{
		TotalCount:   len(catalog),
		HeroProducts: hero,
		Catalog:      catalog,
		Categories:   uniqueCategories(catalog),
	}
}

func mapProduct(baseURL string, rp rawProduct) shopsight.Product {
	images := make([]string, 0, len(rp.Images))
	for _, img := range rp.Images {
		images = append(images, img.Src)
	}

	return shopsight.Product{
		ID:          rp.ID.String(),
		Title:       rp.Title,
		Description: rp.BodyHTML,
		Price:       firstVariantPrice(rp.Variants),
		Images:      images,
		Variants:    rp.Variants,
		Tags:        parseTags(rp.Tags),
		ProductType: rp.ProductType,
		Vendor:      rp.Vendor,
		Handle:      rp.Handle,
		URL:         buildEndpoint(baseURL, "/products/"+rp.Handle),
		Available:   rp.PublishedAt != nil,
		CreatedAt:   rp.CreatedAt,
		UpdatedAt:   rp.UpdatedAt,
	}
}

// firstVariantPrice returns the price of the first variant, tolerating both
// string and numeric representations.
func firstVariantPrice(variants []map[string]any) string {
	if len(variants) == 0 {
		return ""
	}
	switch p := variants[0]["price"].(type) {
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return ""
	}
}

// parseTags accepts both feed representations of tags: an array of strings
// or a single comma-separated string.
func parseTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil && joined != "" {
		var tags []string
		for _, tag := range splitAndTrim(joined, ",") {
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}
	return nil
}

// uniqueCategories returns the unique non-empty product types in first-seen
// order.
func uniqueCategories(products []shopsight.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.ProductType == "" || seen[p.ProductType] {
			continue
		}
		seen[p.ProductType] = true
		categories = append(categories, p.ProductType)
	}
	return categories
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func (s *CatalogService) warn(msg, baseURL string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "url", baseURL, "err", err)
	}
}
