package shopsight

// ParsedPage is an immutable handle over one parsed HTML document. All
// extraction operations are tolerant: malformed or missing markup yields an
// empty result, never an error.
type ParsedPage interface {
	// Text returns whitespace-normalized document text, or the text of the
	// first element matching selector when selector is non-empty.
	Text(selector string) string

	// Links returns every anchor with a non-empty href and visible text.
	// Relative hrefs are resolved against baseURL by concatenation:
	// {base without trailing "/"}/{href without leading "/"}.
	Links(baseURL string) []Link

	// ContactInfo scans the document text for email addresses and phone
	// numbers.
	ContactInfo() ContactInfo

	// SocialHandles scans the document text for handles on the fixed
	// platform set. Duplicates across platforms and patterns are expected.
	SocialHandles() []SocialHandle

	// ImportantLinks classifies every extracted link against the fixed
	// category taxonomy; the first category with any matching pattern wins.
	ImportantLinks(baseURL string) []ImportantLink

	// FAQs extracts question/answer pairs from FAQ-like containers. The
	// selector list is applied exhaustively, so overlapping selectors can
	// emit the same pair more than once.
	FAQs() []FAQ

	// BrandInfo extracts the brand name from the title tag, the description
	// from the meta description, and about text from the first matching
	// about/mission element.
	BrandInfo() BrandInfo
}

// PageParser parses HTML into a ParsedPage handle. Parsing is a pure
// function of its input; handles carry no hidden shared state across calls.
type PageParser interface {
	Parse(html string) (ParsedPage, error)
}
