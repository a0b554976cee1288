package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SearchCmd runs one provider search and prints the records.
type SearchCmd struct {
	Query        []string
	GenericCover string
	Locale       string
	JSON         bool
}

// Run executes the search.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	// Errors, including ENOTFOUND, are reported once by main.
	records, err := deps.Provider.Search(deps.Ctx, query, c.GenericCover, c.Locale)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	}

	fmt.Fprint(deps.Stdout, FormatRecords(records))
	return nil
}
