package mock

import (
	"context"

	"github.com/fwojciec/shopsight"
)

var _ shopsight.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of shopsight.CatalogService.
type CatalogService struct {
	FetchCatalogFn func(ctx context.Context, baseURL string, maxProducts int) shopsight.ProductCatalog
}

func (s *CatalogService) FetchCatalog(ctx context.Context, baseURL string, maxProducts int) shopsight.ProductCatalog {
	return s.FetchCatalogFn(ctx, baseURL, maxProducts)
}

var _ shopsight.PolicyService = (*PolicyService)(nil)

// PolicyService is a mock implementation of shopsight.PolicyService.
type PolicyService struct {
	FetchPoliciesFn func(ctx context.Context, baseURL string) shopsight.PolicySet
}

func (s *PolicyService) FetchPolicies(ctx context.Context, baseURL string) shopsight.PolicySet {
	return s.FetchPoliciesFn(ctx, baseURL)
}

var _ shopsight.FAQService = (*FAQService)(nil)

// FAQService is a mock implementation of shopsight.FAQService.
type FAQService struct {
	FetchFAQsFn func(ctx context.Context, baseURL string) []shopsight.FAQ
}

func (s *FAQService) FetchFAQs(ctx context.Context, baseURL string) []shopsight.FAQ {
	return s.FetchFAQsFn(ctx, baseURL)
}

var _ shopsight.ProfileService = (*ProfileService)(nil)

// ProfileService is a mock implementation of shopsight.ProfileService.
type ProfileService struct {
	ExtractFn func(ctx context.Context, rawURL string, opts shopsight.ExtractOptions) (*shopsight.StoreProfile, error)
}

func (s *ProfileService) Extract(ctx context.Context, rawURL string, opts shopsight.ExtractOptions) (*shopsight.StoreProfile, error) {
	return s.ExtractFn(ctx, rawURL, opts)
}
