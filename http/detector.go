package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/shopsight"
)

// DefaultProbeTimeout bounds each individual detection probe.
const DefaultProbeTimeout = 8 * time.Second

// cdnHost is the Shopify CDN hostname; its presence in a homepage is the
// weakest (last-resort) store classification signal.
const cdnHost = "cdn.shopify.com"

// Ensure Detector implements shopsight.Detector at compile time.
var _ shopsight.Detector = (*Detector)(nil)

// Detector validates URLs and classifies them as Shopify storefronts using
// an ordered sequence of probes: the products feed, the shop feed, then a
// homepage scan for the Shopify CDN hostname. Each probe is a single attempt
// with a bounded timeout; transport failures move detection on to the next
// probe rather than aborting.
type Detector struct {
	client       *http.Client
	probeTimeout time.Duration
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithProbeTimeout sets the per-probe timeout.
// Defaults to DefaultProbeTimeout (8s) if not specified.
func WithProbeTimeout(d time.Duration) DetectorOption {
	return func(det *Detector) {
		det.probeTimeout = d
	}
}

// NewDetector creates a new Detector with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewDetector(client *http.Client, opts ...DetectorOption) *Detector {
	if client == nil {
		client = http.DefaultClient
	}
	det := &Detector{
		client:       client,
		probeTimeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(det)
	}
	return det
}

// Validate normalizes the URL and confirms the site is a Shopify
// storefront. Returns EINVALID when the input is empty, has no host
// component, or fails store classification.
func (d *Detector) Validate(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", shopsight.Errorf(shopsight.EINVALID, "URL cannot be empty")
	}

	if lower := strings.ToLower(rawURL); !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", shopsight.Errorf(shopsight.EINVALID, "invalid URL format")
	}

	if !d.isStore(ctx, strings.TrimRight(rawURL, "/")) {
		return "", shopsight.Errorf(shopsight.EINVALID, "URL does not appear to be a Shopify store")
	}

	return normalizeURL(u), nil
}

// isStore runs the classification probes in order, short-circuiting on the
// first positive result.
func (d *Detector) isStore(ctx context.Context, baseURL string) bool {
	probes := []func(ctx context.Context, baseURL string) bool{
		d.probeProductsFeed,
		d.probeShopFeed,
		d.probeHomepage,
	}
	for _, probe := range probes {
		if probe(ctx, baseURL) {
			return true
		}
	}
	return false
}

// probeProductsFeed reports whether {base}/products.json returns 200 with a
// JSON object containing a "products" key.
func (d *Detector) probeProductsFeed(ctx context.Context, baseURL string) bool {
	status, body := d.get(ctx, baseURL+"/products.json")
	return status == http.StatusOK && hasJSONKey(body, "products")
}

// probeShopFeed reports whether {base}/shop.json returns 200 with a JSON
// object containing a "shop" key.
func (d *Detector) probeShopFeed(ctx context.Context, baseURL string) bool {
	status, body := d.get(ctx, baseURL+"/shop.json")
	return status == http.StatusOK && hasJSONKey(body, "shop")
}

// probeHomepage reports whether the homepage body mentions the Shopify CDN
// hostname, regardless of status code.
func (d *Detector) probeHomepage(ctx context.Context, baseURL string) bool {
	_, body := d.get(ctx, baseURL)
	return strings.Contains(strings.ToLower(body), cdnHost)
}

// get performs one bounded GET. A transport failure yields status 0 and an
// empty body, which every probe treats as a negative result.
func (d *Detector) get(ctx context.Context, url string) (int, string) {
	ctx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, ""
	}
	applyHeaders(req)

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, ""
	}
	return resp.StatusCode, string(body)
}

// hasJSONKey reports whether body is a JSON object containing the key.
func hasJSONKey(body, key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}

// normalizeURL lower-cases the scheme and host, strips trailing slashes from
// the path, and preserves query and fragment.
func normalizeURL(u *url.URL) string {
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}
