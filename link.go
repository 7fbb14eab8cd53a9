package shopsight

// Important link categories. Classification skips links matching no
// category; LinkCategoryOther is reserved for consumers that need a
// catch-all bucket.
const (
	LinkCategoryOrderTracking = "order_tracking"
	LinkCategoryContactUs     = "contact_us"
	LinkCategoryBlog          = "blog"
	LinkCategoryHelp          = "help"
	LinkCategoryShipping      = "shipping"
	LinkCategoryOther         = "other"
)

// Link is a raw anchor extracted from a page: visible text plus resolved URL.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ImportantLink is a categorized notable link (order tracking, contact,
// blog, help, shipping).
type ImportantLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}
