package shopsight

import "context"

// FAQ represents a single question/answer pair. FAQ lists are ordered and
// not deduplicated; overlapping page selectors can produce the same pair
// more than once.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url,omitempty"`
}

// FAQService locates and parses a store's FAQ page.
type FAQService interface {
	// FetchFAQs tries a fixed, ordered list of candidate page paths and
	// returns the pairs from the first page that responds with HTTP 200 and
	// yields at least one parsed pair. Returns an empty list when every
	// candidate fails.
	FetchFAQs(ctx context.Context, baseURL string) []FAQ
}
