package http_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/shopsight"
	shophttp "github.com/fwojciec/shopsight/http"
	"github.com/fwojciec/shopsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsFeedBody = `{
	"products": [
		{
			"id": 101,
			"title": "Canvas Tote",
			"body_html": "<p>A sturdy tote.</p>",
			"handle": "canvas-tote",
			"product_type": "Bags",
			"vendor": "Acme",
			"tags": ["canvas", "eco"],
			"images": [{"src": "https://cdn.example.com/tote.jpg"}],
			"variants": [{"price": "29.00"}, {"price": "31.00"}],
			"published_at": "2024-01-01T00:00:00Z"
		},
		{
			"id": 102,
			"title": "Wool Beanie",
			"handle": "wool-beanie",
			"product_type": "Hats",
			"vendor": "Acme",
			"tags": "wool, winter",
			"variants": [{"price": 18.5}],
			"published_at": null
		},
		{
			"id": 103,
			"title": "Second Tote",
			"handle": "second-tote",
			"product_type": "Bags",
			"vendor": "Acme",
			"variants": []
		}
	]
}`

func TestCatalogService_FetchCatalog(t *testing.T) {
	t.Parallel()

	t.Run("maps the products feed", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchedURL = url
				return productsFeedBody, nil
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 100)

		assert.Equal(t, "https://acme.example.com/products.json", fetchedURL)
		assert.Equal(t, 3, catalog.TotalCount)
		require.Len(t, catalog.Catalog, 3)

		tote := catalog.Catalog[0]
		assert.Equal(t, "101", tote.ID)
		assert.Equal(t, "Canvas Tote", tote.Title)
		assert.Equal(t, "29.00", tote.Price)
		assert.Equal(t, []string{"canvas", "eco"}, tote.Tags)
		assert.Equal(t, []string{"https://cdn.example.com/tote.jpg"}, tote.Images)
		assert.Equal(t, "https://acme.example.com/products/canvas-tote", tote.URL)
		assert.True(t, tote.Available)

		beanie := catalog.Catalog[1]
		assert.Equal(t, "18.5", beanie.Price)
		assert.Equal(t, []string{"wool", "winter"}, beanie.Tags)
		assert.False(t, beanie.Available)
	})

	t.Run("hero products are a prefix of at most five", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return productsFeedBody, nil
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 100)

		require.LessOrEqual(t, len(catalog.HeroProducts), shopsight.HeroProductCount)
		assert.Equal(t, catalog.Catalog[:len(catalog.HeroProducts)], catalog.HeroProducts)
	})

	t.Run("categories are unique non-empty product types in order", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return productsFeedBody, nil
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 100)

		assert.Equal(t, []string{"Bags", "Hats"}, catalog.Categories)
	})

	t.Run("truncates to maxProducts", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return productsFeedBody, nil
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 2)

		assert.Equal(t, 2, catalog.TotalCount)
		assert.Len(t, catalog.Catalog, 2)
	})

	t.Run("fetch failure degrades to an empty catalog", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 100)

		assert.Equal(t, shopsight.ProductCatalog{}, catalog)
	})

	t.Run("malformed feed degrades to an empty catalog", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>not json</html>", nil
			},
		}

		svc := shophttp.NewCatalogService(fetcher, nil)
		catalog := svc.FetchCatalog(context.Background(), "https://acme.example.com", 100)

		assert.Equal(t, shopsight.ProductCatalog{}, catalog)
	})
}
