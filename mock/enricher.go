package mock

import (
	"context"

	"github.com/fwojciec/shopsight"
)

var _ shopsight.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of shopsight.Enricher.
// Nil functions return their input unchanged.
type Enricher struct {
	StructureFAQsFn      func(ctx context.Context, faqs []shopsight.FAQ) ([]shopsight.FAQ, error)
	EnhanceDescriptionFn func(ctx context.Context, description string) (string, error)
	CategorizeProductsFn func(ctx context.Context, products []shopsight.Product) (map[string][]string, error)
}

func (e *Enricher) StructureFAQs(ctx context.Context, faqs []shopsight.FAQ) ([]shopsight.FAQ, error) {
	if e.StructureFAQsFn == nil {
		return faqs, nil
	}
	return e.StructureFAQsFn(ctx, faqs)
}

func (e *Enricher) EnhanceDescription(ctx context.Context, description string) (string, error) {
	if e.EnhanceDescriptionFn == nil {
		return description, nil
	}
	return e.EnhanceDescriptionFn(ctx, description)
}

func (e *Enricher) CategorizeProducts(ctx context.Context, products []shopsight.Product) (map[string][]string, error) {
	if e.CategorizeProductsFn == nil {
		return nil, nil
	}
	return e.CategorizeProductsFn(ctx, products)
}
