package mock

import "github.com/fwojciec/shopsight"

var _ shopsight.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of shopsight.PageParser.
type PageParser struct {
	ParseFn func(html string) (shopsight.ParsedPage, error)
}

func (p *PageParser) Parse(html string) (shopsight.ParsedPage, error) {
	return p.ParseFn(html)
}

var _ shopsight.ParsedPage = (*ParsedPage)(nil)

// ParsedPage is a mock implementation of shopsight.ParsedPage.
// Nil functions return zero values so tests only stub what they need.
type ParsedPage struct {
	TextFn           func(selector string) string
	LinksFn          func(baseURL string) []shopsight.Link
	ContactInfoFn    func() shopsight.ContactInfo
	SocialHandlesFn  func() []shopsight.SocialHandle
	ImportantLinksFn func(baseURL string) []shopsight.ImportantLink
	FAQsFn           func() []shopsight.FAQ
	BrandInfoFn      func() shopsight.BrandInfo
}

func (p *ParsedPage) Text(selector string) string {
	if p.TextFn == nil {
		return ""
	}
	return p.TextFn(selector)
}

func (p *ParsedPage) Links(baseURL string) []shopsight.Link {
	if p.LinksFn == nil {
		return nil
	}
	return p.LinksFn(baseURL)
}

func (p *ParsedPage) ContactInfo() shopsight.ContactInfo {
	if p.ContactInfoFn == nil {
		return shopsight.ContactInfo{}
	}
	return p.ContactInfoFn()
}

func (p *ParsedPage) SocialHandles() []shopsight.SocialHandle {
	if p.SocialHandlesFn == nil {
		return nil
	}
	return p.SocialHandlesFn()
}

func (p *ParsedPage) ImportantLinks(baseURL string) []shopsight.ImportantLink {
	if p.ImportantLinksFn == nil {
		return nil
	}
	return p.ImportantLinksFn(baseURL)
}

func (p *ParsedPage) FAQs() []shopsight.FAQ {
	if p.FAQsFn == nil {
		return nil
	}
	return p.FAQsFn()
}

func (p *ParsedPage) BrandInfo() shopsight.BrandInfo {
	if p.BrandInfoFn == nil {
		return shopsight.BrandInfo{}
	}
	return p.BrandInfoFn()
}
