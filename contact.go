package shopsight

// ContactInfo holds contact details extracted from page text. Emails are
// deduplicated case-insensitively and stored lower-cased; phone numbers are
// deduplicated by exact string match only.
type ContactInfo struct {
	Emails         []string `json:"emails,omitempty"`
	PhoneNumbers   []string `json:"phoneNumbers,omitempty"`
	Addresses      []string `json:"addresses,omitempty"`
	ContactFormURL string   `json:"contactFormUrl,omitempty"`
	SupportHours   string   `json:"supportHours,omitempty"`
}
