// Package aladin implements a bookmeta.Provider for the aladin.co.kr
// bookstore. A search fetches one results page, then fetches and parses
// the item pages of up to MaxItems matches concurrently.
package aladin

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/bookmeta"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxItems is the maximum number of items read from one search.
	MaxItems = 10

	// DefaultConcurrency is the number of item pages fetched at once.
	DefaultConcurrency = 5

	// SearchURL is the search page; the normalized query is appended.
	SearchURL = "https://www.aladin.co.kr/search/wsearchresult.aspx?SearchTarget=All&ViewRowCount=10&SearchWord="

	// BookURL is the item page; the item id is passed as ItemId.
	BookURL = "https://www.aladin.co.kr/shop/wproduct.aspx"
)

// Source describes this provider in every record it returns.
var Source = bookmeta.MetaSourceInfo{
	ID:          "aladin",
	Description: "aladin.co.kr",
	Link:        "https://www.aladin.co.kr/",
}

var _ bookmeta.Provider = (*Provider)(nil)

// Provider searches aladin.co.kr.
type Provider struct {
	Fetcher bookmeta.Fetcher
	Parser  bookmeta.BookPageParser

	// Converter, when set, turns item descriptions into Markdown. Leave it
	// nil for descriptions that are plain text, which Aladin's are.
	Converter bookmeta.Converter

	// Logger receives diagnostics about failed searches and dropped items.
	Logger *slog.Logger

	// Active gates the provider. An inactive provider returns no records.
	Active bool

	// Concurrency bounds simultaneous item fetches; <=0 means DefaultConcurrency.
	Concurrency int

	// SearchURL and BookURL override the site endpoints.
	SearchURL string
	BookURL   string
}

// NewProvider returns an active Provider with default settings.
func NewProvider(fetcher bookmeta.Fetcher, parser bookmeta.BookPageParser) *Provider {
	return &Provider{
		Fetcher:     fetcher,
		Parser:      parser,
		Active:      true,
		Concurrency: DefaultConcurrency,
	}
}

// Source returns the provenance attached to Aladin records.
func (p *Provider) Source() bookmeta.MetaSourceInfo {
	return Source
}

// Search looks up books matching query. The locale is ignored.
//
// Returns ENOTFOUND when the search page cannot be read or lists no items.
// Items whose page cannot be fetched or lacks a required field are left
// out, so the result may be shorter than the number of matches. Records
// are returned in completion order.
func (p *Provider) Search(ctx context.Context, query, genericCover, locale string) ([]*bookmeta.MetaRecord, error) {
	if !p.Active {
		return []*bookmeta.MetaRecord{}, nil
	}

	ids, err := p.searchBookIDs(ctx, ParseQuery(query))
	if err != nil {
		p.logger().Info("no book found", "query", query, "err", err)
		return nil, err
	}

	return p.fetchBooks(ctx, ids, genericCover), nil
}

func (p *Provider) searchBookIDs(ctx context.Context, query string) ([]string, error) {
	searchURL := p.SearchURL
	if searchURL == "" {
		searchURL = SearchURL
	}

	html, err := p.Fetcher.Fetch(ctx, searchURL+query)
	if err != nil {
		return nil, bookmeta.Errorf(bookmeta.ENOTFOUND, "no book found: search page: %v", err)
	}

	ids, err := p.Parser.ParseSearchResults(html, MaxItems)
	if err != nil {
		return nil, bookmeta.Errorf(bookmeta.ENOTFOUND, "no book found: search page: %v", err)
	}
	if len(ids) == 0 {
		return nil, bookmeta.Errorf(bookmeta.ENOTFOUND, "no book found")
	}

	return ids, nil
}

// fetchBooks fetches item pages on a bounded pool and returns the records
// that could be built. All workers have finished when it returns.
func (p *Provider) fetchBooks(ctx context.Context, ids []string, genericCover string) []*bookmeta.MetaRecord {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan *bookmeta.MetaRecord, len(ids))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for _, id := range ids {
		g.Go(func() error {
			record, err := p.fetchBook(ctx, id, genericCover)
			if err != nil {
				p.logger().Debug("item dropped", "id", id, "err", err)
				return nil
			}
			resultCh <- record
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)

	records := make([]*bookmeta.MetaRecord, 0, len(ids))
	for record := range resultCh {
		records = append(records, record)
	}
	return records
}

func (p *Provider) fetchBook(ctx context.Context, id, genericCover string) (*bookmeta.MetaRecord, error) {
	bookURL := p.BookURL
	if bookURL == "" {
		bookURL = BookURL
	}
	itemURL := bookURL + "?ItemId=" + url.QueryEscape(id)

	html, err := p.Fetcher.Fetch(ctx, itemURL)
	if err != nil {
		return nil, fmt.Errorf("fetch item page: %w", err)
	}

	page, err := p.Parser.ParseBookPage(html)
	if err != nil {
		return nil, fmt.Errorf("parse item page: %w", err)
	}

	cover := page.Cover
	if cover == "" {
		cover = genericCover
	}

	return &bookmeta.MetaRecord{
		ID:            id,
		Title:         page.Title,
		Authors:       page.Authors,
		URL:           itemURL,
		Source:        Source,
		Cover:         cover,
		Description:   p.description(id, page.Description),
		Identifiers:   map[string]string{"isbn": page.ISBN},
		Publisher:     page.Publisher,
		PublishedDate: page.PublishedDate,
		Rating:        page.Rating,
	}, nil
}

// description converts an item description to Markdown when a Converter
// is configured. The raw text is kept if conversion fails.
func (p *Provider) description(id, text string) string {
	if p.Converter == nil || text == "" {
		return text
	}
	md, err := p.Converter.Convert(text)
	if err != nil {
		p.logger().Debug("description not converted", "id", id, "err", err)
		return text
	}
	return md
}

func (p *Provider) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
