package mock

import (
	"context"

	"github.com/fwojciec/shopsight"
)

var _ shopsight.Detector = (*Detector)(nil)

// Detector is a mock implementation of shopsight.Detector.
type Detector struct {
	ValidateFn func(ctx context.Context, rawURL string) (string, error)
}

func (d *Detector) Validate(ctx context.Context, rawURL string) (string, error) {
	return d.ValidateFn(ctx, rawURL)
}
