package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bookmeta"
)

// FormatRecords renders records as text blocks separated by blank lines.
// Empty fields are omitted.
func FormatRecords(records []*bookmeta.MetaRecord) string {
	if len(records) == 0 {
		return "0 books\n"
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s [%s]\n", r.Title, r.ID)
		writeField(&b, "Authors", strings.Join(r.Authors, ", "))
		writeField(&b, "Publisher", r.Publisher)
		writeField(&b, "Published", r.PublishedDate)
		writeField(&b, "ISBN", r.Identifiers["isbn"])
		fmt.Fprintf(&b, "  %-10s %d/5\n", "Rating:", r.Rating)
		writeField(&b, "Cover", r.Cover)
		writeField(&b, "URL", r.URL)
		if r.Description != "" {
			b.WriteString("\n")
			for _, line := range strings.Split(r.Description, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %-10s %s\n", name+":", value)
}
