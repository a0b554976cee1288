package bookmeta

import (
	"regexp"
	"strings"
)

// titlePatterns are applied in order before a title is split into tokens.
var titlePatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Bracketed year and format tags: (2010), [Omnibus], {paperback}.
	{regexp.MustCompile(`(?i)[({\[](\d{4}|omnibus|anthology|hardcover|audiobook|audio\scd|paperback|turtleback|mass\s*market|edition|ed\.)[\])}]`), ""},
	// Any bracketed group mentioning an edition.
	{regexp.MustCompile(`(?i)[({\[].*?(edition|ed.).*?[\]})]`), ""},
	// Thousands separators.
	{regexp.MustCompile(`(\d+),(\d+)`), "${1}${2}"},
	// Hyphens preceded by whitespace.
	{regexp.MustCompile(`\s-`), " "},
	{regexp.MustCompile("[:,;!@$%^&*(){}.`~\"\\s\\[\\]/《》「」“”]"), " "},
}

var joiners = map[string]bool{"a": true, "and": true, "the": true, "&": true}

// TitleTokens splits a book title into search tokens. Edition and format
// annotations are removed and punctuation is treated as whitespace. When
// stripJoiners is set, the joining words "a", "and", "the" and "&" are
// dropped.
func TitleTokens(title string, stripJoiners bool) []string {
	for _, p := range titlePatterns {
		title = p.re.ReplaceAllString(title, p.repl)
	}

	var tokens []string
	for _, token := range strings.Fields(title) {
		token = strings.Trim(strings.Trim(token, `"`), "'")
		if token == "" {
			continue
		}
		if stripJoiners && joiners[strings.ToLower(token)] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
