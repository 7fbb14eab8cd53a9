package shopsight

import "context"

// Enricher improves extracted data using an external language model.
//
// Enrichment is always optional: callers treat any error as "keep the
// original input" and the base pipeline's success never depends on it.
type Enricher interface {
	// StructureFAQs cleans up and restructures raw FAQ pairs.
	StructureFAQs(ctx context.Context, faqs []FAQ) ([]FAQ, error)

	// EnhanceDescription rewrites a brand description to be clearer while
	// preserving its meaning.
	EnhanceDescription(ctx context.Context, description string) (string, error)

	// CategorizeProducts groups products into logical categories, returning
	// category name -> product IDs.
	CategorizeProducts(ctx context.Context, products []Product) (map[string][]string, error)
}
