package http

import (
	"context"
	"log/slog"

	"github.com/fwojciec/shopsight"
)

// faqPagePaths are the candidate FAQ page locations, tried in order.
var faqPagePaths = []string{
	"/pages/faq",
	"/pages/faqs",
	"/pages/help",
	"/pages/support",
}

// Ensure FAQService implements shopsight.FAQService at compile time.
var _ shopsight.FAQService = (*FAQService)(nil)

// FAQService locates a store's FAQ page among fixed candidate paths and
// parses it into question/answer pairs.
type FAQService struct {
	fetcher shopsight.Fetcher
	parser  shopsight.PageParser
	logger  *slog.Logger
}

// NewFAQService creates a new FAQService. The logger may be nil.
func NewFAQService(fetcher shopsight.Fetcher, parser shopsight.PageParser, logger *slog.Logger) *FAQService {
	return &FAQService{fetcher: fetcher, parser: parser, logger: logger}
}

// FetchFAQs tries each candidate path in order and returns the pairs from
// the first page that both responds with HTTP 200 and yields at least one
// parsed pair. Per-path failures are swallowed; if every candidate fails an
// empty list is returned.
func (s *FAQService) FetchFAQs(ctx context.Context, baseURL string) []shopsight.FAQ {
	for _, path := range faqPagePaths {
		pageURL := buildEndpoint(baseURL, path)

		body, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			s.debug("FAQ candidate failed", pageURL, err)
			continue
		}

		page, err := s.parser.Parse(body)
		if err != nil {
			s.debug("FAQ candidate unparsable", pageURL, err)
			continue
		}

		faqs := page.FAQs()
		if len(faqs) == 0 {
			continue
		}
		for i := range faqs {
			faqs[i].URL = pageURL
		}
		return faqs
	}

	return []shopsight.FAQ{}
}

func (s *FAQService) debug(msg, url string, err error) {
	if s.logger != nil {
		s.logger.Debug(msg, "url", url, "err", err)
	}
}
