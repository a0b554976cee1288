package mock

import "github.com/fwojciec/bookmeta"

var _ bookmeta.BookPageParser = (*BookPageParser)(nil)

// BookPageParser is a mock implementation of bookmeta.BookPageParser.
type BookPageParser struct {
	ParseSearchResultsFn func(html string, limit int) ([]string, error)
	ParseBookPageFn      func(html string) (*bookmeta.BookPage, error)
}

func (p *BookPageParser) ParseSearchResults(html string, limit int) ([]string, error) {
	return p.ParseSearchResultsFn(html, limit)
}

func (p *BookPageParser) ParseBookPage(html string) (*bookmeta.BookPage, error) {
	return p.ParseBookPageFn(html)
}
