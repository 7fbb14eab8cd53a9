package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fwojciec/shopsight"
)

// Ensure PolicyService implements shopsight.PolicyService at compile time.
var _ shopsight.PolicyService = (*PolicyService)(nil)

// PolicyService fetches a store's pages feed and files policy-like pages
// into the fixed category slots.
type PolicyService struct {
	fetcher   shopsight.Fetcher
	converter shopsight.Converter
	logger    *slog.Logger
}

// NewPolicyService creates a new PolicyService. The converter, when
// non-nil, additionally renders each policy body as Markdown. The logger
// may be nil.
func NewPolicyService(fetcher shopsight.Fetcher, converter shopsight.Converter, logger *slog.Logger) *PolicyService {
	return &PolicyService{fetcher: fetcher, converter: converter, logger: logger}
}

type rawPage struct {
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	BodyHTML  string `json:"body_html"`
	UpdatedAt string `json:"updated_at"`
}

type pagesFeed struct {
	Pages []rawPage `json:"pages"`
}

// policyGroups are scanned in a fixed priority order; the first group with
// a keyword contained in the page handle claims the page.
var policyGroups = []struct {
	keywords []string
	assign   func(*shopsight.PolicySet, *shopsight.PolicyDocument)
}{
	{[]string{"privacy", "privacy-policy"}, func(s *shopsight.PolicySet, d *shopsight.PolicyDocument) { s.PrivacyPolicy = d }},
	{[]string{"return", "returns"}, func(s *shopsight.PolicySet, d *shopsight.PolicyDocument) { s.ReturnPolicy = d }},
	{[]string{"refund", "refunds"}, func(s *shopsight.PolicySet, d *shopsight.PolicyDocument) { s.RefundPolicy = d }},
	{[]string{"shipping"}, func(s *shopsight.PolicySet, d *shopsight.PolicyDocument) { s.ShippingPolicy = d }},
	{[]string{"terms"}, func(s *shopsight.PolicySet, d *shopsight.PolicyDocument) { s.TermsOfService = d }},
}

// FetchPolicies fetches {base}/pages.json and categorizes each page. A page
// lands in at most one slot; pages whose handle mentions "policy" without
// matching any group go to OtherPolicies. Any failure degrades to an empty
// PolicySet.
func (s *PolicyService) FetchPolicies(ctx context.Context, baseURL string) shopsight.PolicySet {
	var set shopsight.PolicySet

	body, err := s.fetcher.Fetch(ctx, buildEndpoint(baseURL, "/pages.json"))
	if err != nil {
		s.warn("failed to fetch pages feed", baseURL, err)
		return set
	}

	var feed pagesFeed
	if err := json.Unmarshal([]byte(body), &feed); err != nil {
		s.warn("failed to parse pages feed", baseURL, err)
		return set
	}

	for _, page := range feed.Pages {
		handle := strings.ToLower(page.Handle)
		doc := s.buildDocument(baseURL, page)

		filed := false
		for _, group := range policyGroups {
			if containsAny(handle, group.keywords) {
				group.assign(&set, doc)
				filed = true
				break
			}
		}
		if !filed && strings.Contains(handle, "policy") {
			set.OtherPolicies = append(set.OtherPolicies, *doc)
		}
	}

	return set
}

func (s *PolicyService) buildDocument(baseURL string, page rawPage) *shopsight.PolicyDocument {
	doc := &shopsight.PolicyDocument{
		Title:       page.Title,
		Content:     shopsight.CleanText(page.BodyHTML, 0),
		URL:         buildEndpoint(baseURL, "/pages/"+page.Handle),
		LastUpdated: page.UpdatedAt,
	}
	if s.converter != nil {
		if md, err := s.converter.Convert(page.BodyHTML); err == nil {
			doc.ContentMarkdown = strings.TrimSpace(md)
		}
	}
	return doc
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (s *PolicyService) warn(msg, baseURL string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "url", baseURL, "err", err)
	}
}
