package shopsight

import "context"

// PolicyDocument represents one policy page with cleaned content.
type PolicyDocument struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ContentMarkdown string `json:"contentMarkdown,omitempty"`
	URL             string `json:"url,omitempty"`
	LastUpdated     string `json:"lastUpdated,omitempty"`
}

// PolicySet holds at most one document per fixed policy category plus an
// overflow list for uncategorized policy-like pages. A page is filed into at
// most one slot, first-match-wins by category scan order.
type PolicySet struct {
	PrivacyPolicy  *PolicyDocument  `json:"privacyPolicy,omitempty"`
	ReturnPolicy   *PolicyDocument  `json:"returnPolicy,omitempty"`
	RefundPolicy   *PolicyDocument  `json:"refundPolicy,omitempty"`
	ShippingPolicy *PolicyDocument  `json:"shippingPolicy,omitempty"`
	TermsOfService *PolicyDocument  `json:"termsOfService,omitempty"`
	OtherPolicies  []PolicyDocument `json:"otherPolicies,omitempty"`
}

// IsEmpty reports whether no policy slot or overflow entry is populated.
func (s PolicySet) IsEmpty() bool {
	return s.PrivacyPolicy == nil &&
		s.ReturnPolicy == nil &&
		s.RefundPolicy == nil &&
		s.ShippingPolicy == nil &&
		s.TermsOfService == nil &&
		len(s.OtherPolicies) == 0
}

// PolicyService retrieves and categorizes a store's policy pages.
type PolicyService interface {
	// FetchPolicies fetches {base}/pages.json and files each page into the
	// first matching policy slot. Any failure yields an empty PolicySet,
	// never an error.
	FetchPolicies(ctx context.Context, baseURL string) PolicySet
}
