// Package extract assembles complete store profiles by orchestrating the
// detection, fetching, parsing, and enrichment services behind a single
// ProfileService implementation.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shopsight"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many profile sections are fetched in
// parallel during one extraction.
const DefaultConcurrency = 3

var _ shopsight.ProfileService = (*Extractor)(nil)

// Extractor implements shopsight.ProfileService by coordinating the
// individual section services. Detector, Fetcher, Parser, Catalogs,
// Policies, and FAQs are required; Enricher, Limiter, and Logger are
// optional and disable their feature when nil.
type Extractor struct {
	Detector shopsight.Detector
	Fetcher  shopsight.Fetcher
	Parser   shopsight.PageParser
	Catalogs shopsight.CatalogService
	Policies shopsight.PolicyService
	FAQs     shopsight.FAQService
	Enricher shopsight.Enricher
	Limiter  shopsight.DomainLimiter
	Logger   *slog.Logger

	// Concurrency bounds the parallel section fetches; zero means
	// DefaultConcurrency.
	Concurrency int
}

// Extract validates the URL, confirms the site is a Shopify storefront, and
// assembles a StoreProfile. Validation and homepage access failures abort
// the run; every other stage degrades to an empty section with a warning.
func (e *Extractor) Extract(ctx context.Context, rawURL string, opts shopsight.ExtractOptions) (*shopsight.StoreProfile, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := e.Detector.Validate(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := e.wait(ctx, baseURL); err != nil {
		return nil, err
	}

	homepage, err := e.Fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, shopsight.Errorf(shopsight.EUNAVAILABLE, "failed to access website: %v", err)
	}

	var warnings []string
	page, err := e.Parser.Parse(homepage)
	if err != nil {
		e.warn("failed to parse homepage", baseURL, err)
		warnings = append(warnings, "homepage could not be parsed; brand and contact sections are incomplete")
		page = emptyPage{}
	}

	// The section fetches hit disjoint endpoints and write disjoint
	// fields, so they run concurrently without coordination beyond Wait.
	var (
		products shopsight.ProductCatalog
		policies shopsight.PolicySet
		faqs     = []shopsight.FAQ{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency())

	if opts.IncludeProducts {
		g.Go(func() error {
			products = e.Catalogs.FetchCatalog(gctx, baseURL, opts.MaxProducts)
			return nil
		})
	}
	if opts.IncludePolicies {
		g.Go(func() error {
			policies = e.Policies.FetchPolicies(gctx, baseURL)
			return nil
		})
	}
	if opts.IncludeFAQs {
		g.Go(func() error {
			faqs = e.FAQs.FetchFAQs(gctx, baseURL)
			return nil
		})
	}
	_ = g.Wait() // section goroutines never return errors

	brand := page.BrandInfo()
	brand.WebsiteURL = baseURL

	profile := &shopsight.StoreProfile{
		BrandInfo:      brand,
		Products:       products,
		Policies:       policies,
		FAQs:           faqs,
		ImportantLinks: page.ImportantLinks(baseURL),
	}
	if opts.IncludeSocial {
		profile.SocialHandles = page.SocialHandles()
	}
	if opts.IncludeContact {
		profile.ContactInfo = page.ContactInfo()
	}

	warnings = append(warnings, e.enrich(ctx, profile)...)

	profile.Meta = shopsight.ExtractionMeta{
		ExtractionID: uuid.NewString(),
		SourceURL:    baseURL,
		ExtractedAt:  time.Now().UTC(),
		HomepageHash: fmt.Sprintf("%016x", xxhash.Sum64String(homepage)),
		Options:      opts,
		Warnings:     warnings,
	}

	return profile, nil
}

// enrich applies optional language model passes to the assembled profile.
// Every pass fails soft: an error keeps the original data and records a
// warning.
func (e *Extractor) enrich(ctx context.Context, profile *shopsight.StoreProfile) []string {
	if e.Enricher == nil {
		return nil
	}

	var warnings []string

	if len(profile.FAQs) > 0 {
		if structured, err := e.Enricher.StructureFAQs(ctx, profile.FAQs); err != nil {
			e.warn("FAQ enrichment failed", profile.BrandInfo.WebsiteURL, err)
			warnings = append(warnings, "FAQ enrichment failed; returning raw pairs")
		} else {
			profile.FAQs = structured
		}
	}

	if profile.BrandInfo.Description != "" {
		if enhanced, err := e.Enricher.EnhanceDescription(ctx, profile.BrandInfo.Description); err != nil {
			e.warn("description enrichment failed", profile.BrandInfo.WebsiteURL, err)
			warnings = append(warnings, "description enrichment failed; returning original text")
		} else if enhanced != "" {
			profile.BrandInfo.Description = enhanced
		}
	}

	if len(profile.Products.Catalog) > 0 && len(profile.Products.Categories) == 0 {
		if groups, err := e.Enricher.CategorizeProducts(ctx, profile.Products.Catalog); err != nil {
			e.warn("product categorization failed", profile.BrandInfo.WebsiteURL, err)
			warnings = append(warnings, "product categorization failed; no categories assigned")
		} else if len(groups) > 0 {
			categories := make([]string, 0, len(groups))
			for name := range groups {
				categories = append(categories, name)
			}
			sort.Strings(categories)
			profile.Products.Categories = categories
		}
	}

	return warnings
}

// wait applies per-host admission pacing, when configured: one Wait per
// extraction, taken after classification and before the first profile fetch.
func (e *Extractor) wait(ctx context.Context, baseURL string) error {
	if e.Limiter == nil {
		return nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	return e.Limiter.Wait(ctx, u.Host)
}

func (e *Extractor) concurrency() int {
	if e.Concurrency > 0 {
		return e.Concurrency
	}
	return DefaultConcurrency
}

func (e *Extractor) warn(msg, url string, err error) {
	if e.Logger != nil {
		e.Logger.Warn(msg, "url", url, "err", err)
	}
}

// emptyPage stands in for the homepage when parsing fails, so downstream
// section assembly never needs nil checks.
type emptyPage struct{}

var _ shopsight.ParsedPage = emptyPage{}

func (emptyPage) Text(string) string                            { return "" }
func (emptyPage) Links(string) []shopsight.Link                 { return nil }
func (emptyPage) ContactInfo() shopsight.ContactInfo            { return shopsight.ContactInfo{} }
func (emptyPage) SocialHandles() []shopsight.SocialHandle       { return nil }
func (emptyPage) ImportantLinks(string) []shopsight.ImportantLink { return nil }
func (emptyPage) FAQs() []shopsight.FAQ                         { return nil }
func (emptyPage) BrandInfo() shopsight.BrandInfo                { return shopsight.BrandInfo{} }
