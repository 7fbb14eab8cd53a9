package shopsight

import (
	"context"
	"time"
)

// Default and maximum bounds for the number of products mapped from the
// products feed in a single extraction.
const (
	DefaultMaxProducts = 100
	MaxProductsLimit   = 1000
)

// StoreProfile is the complete assembled result of one extraction run.
// It is created once per extraction and not mutated afterwards.
type StoreProfile struct {
	BrandInfo      BrandInfo       `json:"brandInfo"`
	Products       ProductCatalog  `json:"products"`
	Policies       PolicySet       `json:"policies"`
	FAQs           []FAQ           `json:"faqs"`
	SocialHandles  []SocialHandle  `json:"socialHandles"`
	ContactInfo    ContactInfo     `json:"contactInfo"`
	ImportantLinks []ImportantLink `json:"importantLinks"`
	Meta           ExtractionMeta  `json:"extractionMetadata"`
}

// BrandInfo holds brand-level information extracted from the homepage.
type BrandInfo struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	WebsiteURL  string `json:"websiteUrl"`
	LogoURL     string `json:"logoUrl,omitempty"`
	AboutText   string `json:"aboutText,omitempty"`
}

// ExtractionMeta describes how and when a profile was extracted.
type ExtractionMeta struct {
	ExtractionID string         `json:"extractionId"`
	SourceURL    string         `json:"sourceUrl"`
	ExtractedAt  time.Time      `json:"extractedAt"`
	HomepageHash string         `json:"homepageHash,omitempty"`
	Options      ExtractOptions `json:"options"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// ExtractOptions selects which optional sections of a profile to compute.
// A disabled section is skipped entirely and left at its zero value.
type ExtractOptions struct {
	IncludeProducts bool `json:"includeProducts"`
	IncludePolicies bool `json:"includePolicies"`
	IncludeFAQs     bool `json:"includeFaqs"`
	IncludeSocial   bool `json:"includeSocial"`
	IncludeContact  bool `json:"includeContact"`
	MaxProducts     int  `json:"maxProducts"`
}

// DefaultExtractOptions returns options with every section enabled and
// MaxProducts set to DefaultMaxProducts.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		IncludeProducts: true,
		IncludePolicies: true,
		IncludeFAQs:     true,
		IncludeSocial:   true,
		IncludeContact:  true,
		MaxProducts:     DefaultMaxProducts,
	}
}

// Validate returns an error if the options contain invalid fields.
func (o ExtractOptions) Validate() error {
	if o.MaxProducts < 1 || o.MaxProducts > MaxProductsLimit {
		return Errorf(EINVALID, "maxProducts must be between 1 and %d", MaxProductsLimit)
	}
	return nil
}

// ProfileService extracts a complete store profile from a storefront URL.
type ProfileService interface {
	// Extract validates the URL, confirms it belongs to a Shopify
	// storefront, and assembles a StoreProfile from its public feeds and
	// pages. Only URL validation and homepage access failures abort the
	// extraction; every other stage degrades to an empty section.
	Extract(ctx context.Context, rawURL string, opts ExtractOptions) (*StoreProfile, error)
}
