package mock

import "github.com/fwojciec/uninews"

var _ uninews.Converter = (*Converter)(nil)

// Converter is a mock implementation of uninews.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
