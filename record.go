package bookmeta

import "context"

// MetaSourceInfo describes where a record came from.
type MetaSourceInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// MetaRecord is the normalized metadata record shared by all providers.
type MetaRecord struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Authors       []string          `json:"authors"`
	URL           string            `json:"url"`
	Source        MetaSourceInfo    `json:"source"`
	Cover         string            `json:"cover"`
	Description   string            `json:"description"`
	Identifiers   map[string]string `json:"identifiers"`
	Publisher     string            `json:"publisher"`
	PublishedDate string            `json:"published_date"`
	Rating        int               `json:"rating"`
}

// Provider is a pluggable metadata source.
type Provider interface {
	// Source identifies the provider.
	Source() MetaSourceInfo

	// Search looks up books matching a free-text query.
	// genericCover is used for records whose page has no cover image.
	// Returns ENOTFOUND when the search itself yields nothing. A nil error
	// with an empty slice means matches were found but none could be read.
	Search(ctx context.Context, query, genericCover, locale string) ([]*MetaRecord, error)
}
