package aladin

import (
	"net/url"
	"strings"

	"github.com/fwojciec/bookmeta"
)

// ParseQuery turns a free-text query into the SearchWord parameter of the
// Aladin search page. Title tokens are percent-encoded and joined with "+".
// Joining words are kept. A query without tokens is returned unchanged.
func ParseQuery(query string) string {
	tokens := bookmeta.TitleTokens(query, false)
	if len(tokens) == 0 {
		return query
	}

	escaped := make([]string, len(tokens))
	for i, token := range tokens {
		escaped[i] = url.QueryEscape(token)
	}
	return strings.Join(escaped, "+")
}
