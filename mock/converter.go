package mock

import "github.com/fwojciec/bookmeta"

var _ bookmeta.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookmeta.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
