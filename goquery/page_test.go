package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopsight"
	"github.com/fwojciec/shopsight/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) shopsight.ParsedPage {
	t.Helper()
	page, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return page
}

func TestPage_Text(t *testing.T) {
	t.Parallel()

	t.Run("full document text is whitespace normalized", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<html><body><h1>Acme   Goods</h1>\n<p>Fine\twares</p></body></html>")
		assert.Equal(t, "Acme Goods Fine wares", page.Text(""))
	})

	t.Run("selector picks first matching element", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<div class="hero">first</div><div class="hero">second</div>`)
		assert.Equal(t, "first", page.Text(".hero"))
	})

	t.Run("missing element yields empty string", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<p>hello</p>")
		assert.Empty(t, page.Text(".nope"))
	})

	t.Run("invalid selector yields empty string", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<p>hello</p>")
		assert.Empty(t, page.Text("[[["))
	})
}

func TestPage_Links(t *testing.T) {
	t.Parallel()

	t.Run("keeps anchors with href and visible text", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `
			<a href="https://example.com/a">First</a>
			<a href="/b">Second</a>
			<a href="/empty"></a>
			<a>No href</a>`)

		links := page.Links("https://store.example.com/")
		require.Len(t, links, 2)
		assert.Equal(t, shopsight.Link{Text: "First", URL: "https://example.com/a"}, links[0])
		assert.Equal(t, shopsight.Link{Text: "Second", URL: "https://store.example.com/b"}, links[1])
	})

	t.Run("relative hrefs resolve by concatenation", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<a href="pages/faq">FAQ</a>`)
		links := page.Links("https://store.example.com")
		require.Len(t, links, 1)
		assert.Equal(t, "https://store.example.com/pages/faq", links[0].URL)
	})

	t.Run("no base URL leaves hrefs untouched", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<a href="/pages/faq">FAQ</a>`)
		links := page.Links("")
		require.Len(t, links, 1)
		assert.Equal(t, "/pages/faq", links[0].URL)
	})
}

func TestPage_ContactInfo(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates case-variant emails lower-cased", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<p>Write to Hello@Acme.com or hello@acme.com for help.</p>`)
		info := page.ContactInfo()
		assert.Equal(t, []string{"hello@acme.com"}, info.Emails)
	})

	t.Run("extracts phone numbers in raw form", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<footer>Call us: +1 555-123-4567</footer>`)
		info := page.ContactInfo()
		assert.NotEmpty(t, info.PhoneNumbers)
	})

	t.Run("empty document yields empty contact info", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "")
		info := page.ContactInfo()
		assert.Empty(t, info.Emails)
		assert.Empty(t, info.PhoneNumbers)
	})
}

func TestPage_SocialHandles(t *testing.T) {
	t.Parallel()

	t.Run("platform URL match yields handle with derived URL", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<p>Follow us on instagram.com/mybrand today</p>`)

		var found bool
		for _, h := range page.SocialHandles() {
			if h.Platform == shopsight.PlatformInstagram && h.Handle == "mybrand" {
				assert.Equal(t, "https://instagram.com/mybrand", h.URL)
				found = true
			}
		}
		assert.True(t, found, "expected an instagram handle for mybrand")
	})

	t.Run("bare at-mention is attributed to multiple platforms", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<p>Find us @acmegoods everywhere</p>`)

		platforms := make(map[string]bool)
		for _, h := range page.SocialHandles() {
			if h.Handle == "acmegoods" {
				platforms[h.Platform] = true
			}
		}
		// The generic @handle pattern is shared; over-attribution is the
		// documented behavior.
		assert.True(t, platforms[shopsight.PlatformInstagram])
		assert.True(t, platforms[shopsight.PlatformTwitter])
		assert.True(t, platforms[shopsight.PlatformTikTok])
		assert.False(t, platforms[shopsight.PlatformLinkedIn])
	})

	t.Run("no handles in plain text", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<p>Just a paragraph.</p>")
		assert.Empty(t, page.SocialHandles())
	})
}

func TestPage_ImportantLinks(t *testing.T) {
	t.Parallel()

	t.Run("first matching category wins", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `
			<a href="/pages/track-your-order">Track Order</a>
			<a href="/blogs/news">Blog</a>
			<a href="/pages/random">Lookbook</a>`)

		links := page.ImportantLinks("https://store.example.com")
		require.Len(t, links, 2)
		assert.Equal(t, shopsight.LinkCategoryOrderTracking, links[0].Category)
		assert.Equal(t, "Track Order", links[0].Title)
		assert.Equal(t, shopsight.LinkCategoryBlog, links[1].Category)
	})

	t.Run("support matches contact_us before help", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<a href="/pages/support">Support</a>`)
		links := page.ImportantLinks("https://store.example.com")
		require.Len(t, links, 1)
		assert.Equal(t, shopsight.LinkCategoryContactUs, links[0].Category)
	})
}

func TestPage_FAQs(t *testing.T) {
	t.Parallel()

	t.Run("extracts question and answer pairs", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `
			<div class="accordion-item">
				<h3>Do you ship internationally?</h3>
				<p>Yes, to over 40 countries.</p>
			</div>`)

		faqs := page.FAQs()
		require.NotEmpty(t, faqs)
		assert.Equal(t, "Do you ship internationally?", faqs[0].Question)
		assert.Equal(t, "Yes, to over 40 countries.", faqs[0].Answer)
	})

	t.Run("overlapping selectors emit duplicates", func(t *testing.T) {
		t.Parallel()

		// Matches both .faq-item and [class*="faq"].
		page := parse(t, `
			<div class="faq-item">
				<strong>What is your return window?</strong>
				<p>30 days.</p>
			</div>`)

		faqs := page.FAQs()
		assert.Len(t, faqs, 2)
	})

	t.Run("element without both parts is skipped", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `<div class="faq-item"><h3>Question only?</h3></div>`)
		assert.Empty(t, page.FAQs())
	})
}

func TestPage_BrandInfo(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, meta description, and about text", func(t *testing.T) {
		t.Parallel()

		page := parse(t, `
			<html><head>
				<title>Acme Goods</title>
				<meta name="description" content="Fine wares since 1912.">
			</head><body>
				<div class="about">We make sturdy things.</div>
				<div class="brand-story">Later story.</div>
			</body></html>`)

		info := page.BrandInfo()
		assert.Equal(t, "Acme Goods", info.Name)
		assert.Equal(t, "Fine wares since 1912.", info.Description)
		assert.Equal(t, "We make sturdy things.", info.AboutText)
	})

	t.Run("missing markup yields zero values", func(t *testing.T) {
		t.Parallel()

		page := parse(t, "<p>nothing here</p>")
		info := page.BrandInfo()
		assert.Empty(t, info.Name)
		assert.Empty(t, info.Description)
		assert.Empty(t, info.AboutText)
	})
}
