package bookmeta

// BookPage holds the raw fields located on one store item page.
type BookPage struct {
	Title   string
	Authors []string

	// Publisher is empty when the page layout does not allow it to be
	// located next to the published date.
	Publisher string

	// Cover is empty when the page carries no cover image.
	Cover string

	Description   string
	ISBN          string
	PublishedDate string

	// Rating is on a 0-5 scale, 0 when the page has no usable rating.
	Rating int
}

// BookPageParser extracts data from a store's search and item pages.
type BookPageParser interface {
	// ParseSearchResults returns up to limit item ids from a search
	// results page, in page order.
	ParseSearchResults(html string, limit int) ([]string, error)

	// ParseBookPage extracts the fields of an item page.
	// Returns EINVALID if any required field cannot be located.
	ParseBookPage(html string) (*BookPage, error)
}
