// Package goquery provides the HTML content parser for store pages.
// Parsing is pure: Parse returns an immutable Page handle and every
// extraction operation is tolerant of malformed or missing markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/shopsight"
)

// Ensure Parser implements shopsight.PageParser at compile time.
var _ shopsight.PageParser = (*Parser)(nil)

// Parser parses HTML documents into Page handles.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses HTML into an immutable Page handle.
func (p *Parser) Parse(html string) (shopsight.ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopsight.Errorf(shopsight.EEXTRACTION, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc, text: doc.Text()}, nil
}

// Ensure Page implements shopsight.ParsedPage at compile time.
var _ shopsight.ParsedPage = (*Page)(nil)

// Page is an immutable handle over one parsed HTML document.
type Page struct {
	doc  *goquery.Document
	text string
}

// Text returns whitespace-normalized document text, or the text of the
// first element matching selector when selector is non-empty. An invalid
// selector yields an empty string.
func (p *Page) Text(selector string) string {
	if selector == "" {
		return normalizeSpace(p.text)
	}
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return ""
	}
	return normalizeSpace(p.doc.FindMatcher(matcher).First().Text())
}

// Links returns every anchor with a non-empty href and visible text.
// Relative hrefs are resolved against baseURL by concatenation.
func (p *Page) Links(baseURL string) []shopsight.Link {
	var links []shopsight.Link
	p.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := normalizeSpace(sel.Text())
		if href == "" || text == "" {
			return
		}
		links = append(links, shopsight.Link{
			Text: text,
			URL:  resolveHref(baseURL, href),
		})
	})
	return links
}

// ContactInfo scans the document text for email addresses and phone
// numbers. Emails are deduplicated case-insensitively and lower-cased;
// phone numbers are deduplicated by exact string match.
func (p *Page) ContactInfo() shopsight.ContactInfo {
	var info shopsight.ContactInfo

	seen := make(map[string]bool)
	for _, email := range emailRE.FindAllString(p.text, -1) {
		email = strings.ToLower(email)
		if seen[email] {
			continue
		}
		seen[email] = true
		info.Emails = append(info.Emails, email)
	}

	seenPhones := make(map[string]bool)
	for _, re := range phoneREs {
		for _, phone := range re.FindAllString(p.text, -1) {
			if seenPhones[phone] {
				continue
			}
			seenPhones[phone] = true
			info.PhoneNumbers = append(info.PhoneNumbers, phone)
		}
	}

	return info
}

// SocialHandles scans the document text for handles on the fixed platform
// set. Every pattern match becomes a candidate handle; there is no dedup
// across platforms or patterns, so duplicates are expected downstream.
func (p *Page) SocialHandles() []shopsight.SocialHandle {
	var handles []shopsight.SocialHandle
	for _, sp := range socialPatterns {
		for _, re := range sp.patterns {
			for _, m := range re.FindAllStringSubmatch(p.text, -1) {
				handle := strings.TrimSpace(m[1])
				if handle == "" {
					continue
				}
				handles = append(handles, shopsight.SocialHandle{
					Platform: sp.platform,
					Handle:   handle,
					URL:      "https://" + sp.platform + ".com/" + handle,
				})
			}
		}
	}
	return handles
}

// ImportantLinks classifies every extracted link against the fixed category
// taxonomy. The first category with any pattern matching the lower-cased
// link text or URL wins; links matching no category are skipped.
func (p *Page) ImportantLinks(baseURL string) []shopsight.ImportantLink {
	var important []shopsight.ImportantLink
	for _, link := range p.Links(baseURL) {
		textLower := strings.ToLower(link.Text)
		urlLower := strings.ToLower(link.URL)

		for _, lc := range linkCategories {
			matched := false
			for _, re := range lc.patterns {
				if re.MatchString(textLower) || re.MatchString(urlLower) {
					matched = true
					break
				}
			}
			if matched {
				important = append(important, shopsight.ImportantLink{
					Title:    link.Text,
					URL:      link.URL,
					Category: lc.category,
				})
				break
			}
		}
	}
	return important
}

// FAQs extracts question/answer pairs from FAQ-like containers. Every
// selector in the fixed list is applied (not first-match), so overlapping
// selectors can emit the same pair more than once.
func (p *Page) FAQs() []shopsight.FAQ {
	var faqs []shopsight.FAQ
	for _, matcher := range faqMatchers {
		p.doc.FindMatcher(matcher).Each(func(_ int, el *goquery.Selection) {
			question := el.Find("h3, h4, h5, strong").First()
			answer := el.Find("p, div").First()
			if question.Length() == 0 || answer.Length() == 0 {
				return
			}
			faqs = append(faqs, shopsight.FAQ{
				Question: normalizeSpace(question.Text()),
				Answer:   normalizeSpace(answer.Text()),
			})
		})
	}
	return faqs
}

// BrandInfo extracts the brand name from the title tag, the description
// from the meta description tag, and about text from the first matching
// about/mission element.
func (p *Page) BrandInfo() shopsight.BrandInfo {
	var info shopsight.BrandInfo

	info.Name = normalizeSpace(p.doc.Find("title").First().Text())

	if content, ok := p.doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		info.Description = strings.TrimSpace(content)
	}

	for _, matcher := range aboutMatchers {
		el := p.doc.FindMatcher(matcher).First()
		if el.Length() > 0 {
			info.AboutText = normalizeSpace(el.Text())
			break
		}
	}

	return info
}

// normalizeSpace collapses all whitespace runs to single spaces and trims
// the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveHref resolves a relative href against a base URL by concatenation:
// {base without trailing "/"}/{href without leading "/"}. Absolute hrefs and
// hrefs without a base pass through unchanged.
func resolveHref(baseURL, href string) string {
	if baseURL == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(href, "/")
}
