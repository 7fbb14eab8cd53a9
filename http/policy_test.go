package http_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	shophttp "github.com/fwojciec/shopsight/http"
	"github.com/fwojciec/shopsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagesFeedBody(pages ...[2]string) string {
	body := `{"pages":[`
	for i, p := range pages {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"title":%q,"handle":%q,"body_html":"<p>Body of %s.</p>","updated_at":"2024-06-01T00:00:00Z"}`, p[0], p[1], p[1])
	}
	return body + `]}`
}

func TestPolicyService_FetchPolicies(t *testing.T) {
	t.Parallel()

	t.Run("files pages into category slots by handle keyword", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				assert.Equal(t, "https://acme.example.com/pages.json", url)
				return pagesFeedBody(
					[2]string{"Privacy Policy", "privacy-policy"},
					[2]string{"Shipping Info", "shipping-information"},
					[2]string{"About Us", "about-us"},
				), nil
			},
		}

		svc := shophttp.NewPolicyService(fetcher, nil, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		require.NotNil(t, set.PrivacyPolicy)
		assert.Equal(t, "Privacy Policy", set.PrivacyPolicy.Title)
		assert.Equal(t, "Body of privacy-policy.", set.PrivacyPolicy.Content)
		assert.Equal(t, "https://acme.example.com/pages/privacy-policy", set.PrivacyPolicy.URL)
		assert.Equal(t, "2024-06-01T00:00:00Z", set.PrivacyPolicy.LastUpdated)

		require.NotNil(t, set.ShippingPolicy)
		assert.Nil(t, set.ReturnPolicy)
		assert.Nil(t, set.RefundPolicy)
		assert.Nil(t, set.TermsOfService)
		assert.Empty(t, set.OtherPolicies)
	})

	t.Run("a page lands in at most one slot", func(t *testing.T) {
		t.Parallel()

		// "return" outranks "refund" in the scan order, so a combined
		// handle fills only the return slot.
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return pagesFeedBody([2]string{"Returns & Refunds", "return-and-refund-policy"}), nil
			},
		}

		svc := shophttp.NewPolicyService(fetcher, nil, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		require.NotNil(t, set.ReturnPolicy)
		assert.Nil(t, set.RefundPolicy)
		assert.Empty(t, set.OtherPolicies)
	})

	t.Run("unmatched policy pages overflow into OtherPolicies", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return pagesFeedBody([2]string{"Cookie Policy", "cookie-policy"}), nil
			},
		}

		svc := shophttp.NewPolicyService(fetcher, nil, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		require.Len(t, set.OtherPolicies, 1)
		assert.Equal(t, "Cookie Policy", set.OtherPolicies[0].Title)
	})

	t.Run("converter renders the Markdown body", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return pagesFeedBody([2]string{"Privacy Policy", "privacy-policy"}), nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Body of privacy-policy.\n", nil
			},
		}

		svc := shophttp.NewPolicyService(fetcher, converter, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		require.NotNil(t, set.PrivacyPolicy)
		assert.Equal(t, "Body of privacy-policy.", set.PrivacyPolicy.ContentMarkdown)
	})

	t.Run("converter failure keeps the plain text content", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return pagesFeedBody([2]string{"Privacy Policy", "privacy-policy"}), nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}

		svc := shophttp.NewPolicyService(fetcher, converter, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		require.NotNil(t, set.PrivacyPolicy)
		assert.Equal(t, "Body of privacy-policy.", set.PrivacyPolicy.Content)
		assert.Empty(t, set.PrivacyPolicy.ContentMarkdown)
	})

	t.Run("fetch failure degrades to an empty set", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		svc := shophttp.NewPolicyService(fetcher, nil, nil)
		set := svc.FetchPolicies(context.Background(), "https://acme.example.com")

		assert.True(t, set.IsEmpty())
	})
}
