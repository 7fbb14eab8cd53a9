package goquery

import (
	"regexp"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/shopsight"
)

// emailRE matches email addresses in page text.
var emailRE = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phoneREs are tried in order; matches are kept in raw string form.
var phoneREs = []*regexp.Regexp{
	regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\+?[0-9]{1,4}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,9}`),
	regexp.MustCompile(`\([0-9]{3}\)[0-9]{3}-[0-9]{4}`),
}

// socialPatterns maps each platform to its ordered handle patterns. The
// generic "@handle" pattern is shared by several platforms, so one mention
// can be attributed to all of them; this over-attribution is intentional
// (the correct attribution is unknowable from text alone).
var socialPatterns = []struct {
	platform string
	patterns []*regexp.Regexp
}{
	{shopsight.PlatformInstagram, []*regexp.Regexp{
		regexp.MustCompile(`(?i)instagram\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)@([^/\s]+)`),
		regexp.MustCompile(`(?i)instagram: ([^/\s]+)`),
	}},
	{shopsight.PlatformFacebook, []*regexp.Regexp{
		regexp.MustCompile(`(?i)facebook\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)fb\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)facebook: ([^/\s]+)`),
	}},
	{shopsight.PlatformTwitter, []*regexp.Regexp{
		regexp.MustCompile(`(?i)twitter\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)x\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)@([^/\s]+)`),
	}},
	{shopsight.PlatformTikTok, []*regexp.Regexp{
		regexp.MustCompile(`(?i)tiktok\.com/@([^/\s]+)`),
		regexp.MustCompile(`(?i)@([^/\s]+)`),
	}},
	{shopsight.PlatformYouTube, []*regexp.Regexp{
		regexp.MustCompile(`(?i)youtube\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)youtu\.be/([^/\s]+)`),
		regexp.MustCompile(`(?i)youtube: ([^/\s]+)`),
	}},
	{shopsight.PlatformLinkedIn, []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)linkedin: ([^/\s]+)`),
	}},
	{shopsight.PlatformPinterest, []*regexp.Regexp{
		regexp.MustCompile(`(?i)pinterest\.com/([^/\s]+)`),
		regexp.MustCompile(`(?i)pinterest: ([^/\s]+)`),
	}},
}

// linkCategories are scanned in order; the first category with any matching
// pattern claims the link.
var linkCategories = []struct {
	category string
	patterns []*regexp.Regexp
}{
	{shopsight.LinkCategoryOrderTracking, []*regexp.Regexp{
		regexp.MustCompile(`track.*order`),
		regexp.MustCompile(`order.*track`),
		regexp.MustCompile(`tracking`),
		regexp.MustCompile(`order-status`),
		regexp.MustCompile(`order.*status`),
	}},
	{shopsight.LinkCategoryContactUs, []*regexp.Regexp{
		regexp.MustCompile(`contact`),
		regexp.MustCompile(`get.*touch`),
		regexp.MustCompile(`reach.*us`),
		regexp.MustCompile(`support`),
	}},
	{shopsight.LinkCategoryBlog, []*regexp.Regexp{
		regexp.MustCompile(`blog`),
		regexp.MustCompile(`news`),
		regexp.MustCompile(`articles`),
		regexp.MustCompile(`stories`),
	}},
	{shopsight.LinkCategoryHelp, []*regexp.Regexp{
		regexp.MustCompile(`help`),
		regexp.MustCompile(`faq`),
		regexp.MustCompile(`support`),
		regexp.MustCompile(`customer.*service`),
	}},
	{shopsight.LinkCategoryShipping, []*regexp.Regexp{
		regexp.MustCompile(`shipping`),
		regexp.MustCompile(`delivery`),
		regexp.MustCompile(`shipping.*returns`),
	}},
}

// faqMatchers are FAQ container selectors, applied exhaustively.
// cascadia.Selector satisfies goquery.Matcher.
var faqMatchers = []cascadia.Selector{
	cascadia.MustCompile(".faq-item"),
	cascadia.MustCompile(".faq-question"),
	cascadia.MustCompile(".faq-answer"),
	cascadia.MustCompile(`[class*="faq"]`),
	cascadia.MustCompile(".accordion-item"),
}

// aboutMatchers locate brand about/mission sections, first match wins.
var aboutMatchers = []cascadia.Selector{
	cascadia.MustCompile(".about"),
	cascadia.MustCompile(".about-us"),
	cascadia.MustCompile(".brand-story"),
	cascadia.MustCompile(".mission-statement"),
}
