package shopsight

import "context"

// Detector validates a raw URL and classifies it as a Shopify storefront.
type Detector interface {
	// Validate normalizes the URL (https default, lower-cased scheme and
	// host, no trailing path slash) and confirms the site is a Shopify
	// storefront via an ordered sequence of probes, short-circuiting on the
	// first positive classification. Returns EINVALID when the input is
	// empty, has no host, or fails classification.
	Validate(ctx context.Context, rawURL string) (normalized string, err error)
}
