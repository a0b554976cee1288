// Package goquery implements store page parsing using CSS selectors.
package goquery

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmeta"
	"golang.org/x/net/html"
)

// AuthorEndMark follows the last author name in an Aladin item subtitle.
const AuthorEndMark = "(지은이)"

// Aladin page selectors. Class attributes are matched exactly.
const (
	aladinItemSelector          = "div[class='ss_book_box']"
	aladinSubtitleSelector      = "li[class='Ere_sub2_title']"
	aladinTitleSelector         = "meta[property='og:title']"
	aladinCoverSelector         = "meta[property='og:image']"
	aladinDescriptionSelector   = "meta[property='og:description']"
	aladinISBNSelector          = "meta[property='books:isbn']"
	aladinPublishedDateSelector = "meta[itemprop='datePublished']"
	aladinRatingSelector        = "a[class='Ere_sub_pink Ere_fs16 Ere_str']"
)

var _ bookmeta.BookPageParser = (*AladinParser)(nil)

// AladinParser parses aladin.co.kr search and item pages.
type AladinParser struct{}

// NewAladinParser creates a new AladinParser.
func NewAladinParser() *AladinParser {
	return &AladinParser{}
}

// ParseSearchResults returns the item ids of the first limit result boxes.
// Boxes without an itemid attribute are skipped, so fewer than limit ids
// may be returned even when the page has more results. Repeated ids are
// reported once, at their first position.
func (p *AladinParser) ParseSearchResults(htmlContent string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, bookmeta.Errorf(bookmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	items := doc.Find(aladinItemSelector)
	if limit > 0 && items.Length() > limit {
		items = items.Slice(0, limit)
	}

	seen := make(map[string]bool)
	var ids []string
	items.Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("itemid")
		if !ok || id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})

	return ids, nil
}

// ParseBookPage extracts the fields of an item page. Title, subtitle
// block, description, ISBN and published date are required; every missing
// one is named in the returned EINVALID error. A missing cover yields an
// empty Cover and a missing or malformed rating yields 0.
func (p *AladinParser) ParseBookPage(htmlContent string) (*bookmeta.BookPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, bookmeta.Errorf(bookmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	var errs []error
	required := func(selector string) string {
		v, err := metaContent(doc, selector)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	page := &bookmeta.BookPage{}
	page.Title = required(aladinTitleSelector)
	page.PublishedDate = required(aladinPublishedDateSelector)

	authors, publisher, err := aladinAuthorsAndPublisher(doc, page.PublishedDate)
	if err != nil {
		errs = append(errs, err)
	}
	page.Authors = authors
	page.Publisher = publisher

	page.Cover, _ = metaContent(doc, aladinCoverSelector)
	page.Description = required(aladinDescriptionSelector)
	page.ISBN = required(aladinISBNSelector)
	page.Rating = aladinRating(doc)

	if len(errs) > 0 {
		return nil, bookmeta.Errorf(bookmeta.EINVALID, "incomplete item page: %v", joinErrors(errs))
	}

	return page, nil
}

// SplitAuthorsAndPublisher reads author names and the publisher from the
// text fragments of an item subtitle.
//
// Fragments up to the first one containing AuthorEndMark are author names;
// blanks and bare commas are skipped. The publisher is the fragment right
// before the first later fragment equal to publishedDate, or "" if no such
// fragment exists.
func SplitAuthorsAndPublisher(fragments []string, publishedDate string) (authors []string, publisher string) {
	i := 0
	for i < len(fragments) {
		author := strings.TrimSpace(fragments[i])
		i++
		if strings.Contains(author, AuthorEndMark) {
			break
		}
		if author != "" && author != "," {
			authors = append(authors, author)
		}
	}

	date := strings.TrimSpace(publishedDate)
	for i < len(fragments) && strings.TrimSpace(fragments[i]) != date {
		i++
	}
	if i < len(fragments) {
		publisher = strings.TrimSpace(fragments[i-1])
	}

	return authors, publisher
}

func aladinAuthorsAndPublisher(doc *goquery.Document, publishedDate string) ([]string, string, error) {
	sub := doc.Find(aladinSubtitleSelector).First()
	if sub.Length() == 0 {
		return nil, "", fmt.Errorf("missing %s", aladinSubtitleSelector)
	}
	authors, publisher := SplitAuthorsAndPublisher(textFragments(sub.Get(0)), publishedDate)
	return authors, publisher, nil
}

// aladinRating converts the 0-10 reader score into a 0-5 rating,
// rounding halves up.
func aladinRating(doc *goquery.Document) int {
	a := doc.Find(aladinRatingSelector).First()
	if a.Length() == 0 {
		return 0
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(a.Text()), 64)
	if err != nil || math.IsNaN(score) || score < 0 || score > 10 {
		return 0
	}
	return int(score/2 + 0.5)
}

// metaContent returns the content attribute of the first element matching
// selector. An element without the attribute counts as missing; an empty
// attribute does not.
func metaContent(doc *goquery.Document, selector string) (string, error) {
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return "", fmt.Errorf("missing %s", selector)
	}
	content, ok := s.Attr("content")
	if !ok {
		return "", fmt.Errorf("missing content of %s", selector)
	}
	return content, nil
}

// textFragments returns the text nodes below n in document order.
func textFragments(n *html.Node) []string {
	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			fragments = append(fragments, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return fragments
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
