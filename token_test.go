package bookmeta_test

import (
	"testing"

	"github.com/fwojciec/bookmeta"
	"github.com/stretchr/testify/assert"
)

func TestTitleTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		title        string
		stripJoiners bool
		want         []string
	}{
		{
			name:  "splits on whitespace",
			title: "Lord of the Rings",
			want:  []string{"Lord", "of", "the", "Rings"},
		},
		{
			name:         "strips joiners when requested",
			title:        "The Lord and the Rings",
			stripJoiners: true,
			want:         []string{"Lord", "Rings"},
		},
		{
			name:  "removes bracketed year",
			title: "Dune (1965)",
			want:  []string{"Dune"},
		},
		{
			name:  "removes bracketed format tag",
			title: "Dune [Paperback]",
			want:  []string{"Dune"},
		},
		{
			name:  "removes bracketed edition note",
			title: "Dune (40th Anniversary Edition)",
			want:  []string{"Dune"},
		},
		{
			name:  "joins thousands separators",
			title: "1,000 Splendid Suns",
			want:  []string{"1000", "Splendid", "Suns"},
		},
		{
			name:  "drops hyphen after whitespace",
			title: "Spider-Man - Homecoming",
			want:  []string{"Spider-Man", "Homecoming"},
		},
		{
			name:  "treats punctuation as whitespace",
			title: "Dune: Messiah; Children/Heretics",
			want:  []string{"Dune", "Messiah", "Children", "Heretics"},
		},
		{
			name:  "treats CJK brackets as whitespace",
			title: "《채식주의자》",
			want:  []string{"채식주의자"},
		},
		{
			name:  "keeps hangul tokens",
			title: "해리 포터와 마법사의 돌",
			want:  []string{"해리", "포터와", "마법사의", "돌"},
		},
		{
			name:  "trims surrounding quotes",
			title: `'Salem's Lot`,
			want:  []string{"Salem's", "Lot"},
		},
		{
			name:  "returns nothing for punctuation only",
			title: " .,;: ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bookmeta.TitleTokens(tt.title, tt.stripJoiners))
		})
	}
}
