package mock

import "github.com/fwojciec/shopsight"

var _ shopsight.Converter = (*Converter)(nil)

// Converter is a mock implementation of shopsight.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
