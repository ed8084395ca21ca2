package validator

import (
	"strings"
	"testing"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/layout"
)

func TestValidate(t *testing.T) {
	square := card.FromStrings([][]string{{"1", "2"}, {"3", "4"}})

	tests := []struct {
		name         string
		deck         deck.Deck
		layout       layout.Layout
		wantErrors   int
		wantWarnings []string
	}{
		{
			name:   "valid",
			deck:   deck.Deck{square, square},
			layout: layout.Default(),
		},
		{
			name:       "empty deck",
			deck:       deck.Deck{},
			layout:     layout.Default(),
			wantErrors: 1,
		},
		{
			name:       "ragged card",
			deck:       deck.Deck{square, card.FromStrings([][]string{{"1"}, {"2", "3"}})},
			layout:     layout.Default(),
			wantErrors: 1,
		},
		{
			name:         "mixed shapes",
			deck:         deck.Deck{square, card.FromStrings([][]string{{"1", "2", "5"}, {"3", "4", "6"}})},
			layout:       layout.Default(),
			wantWarnings: []string{"card 2 is 2x3"},
		},
		{
			name:         "duplicates and empties",
			deck:         deck.Deck{card.FromStrings([][]string{{"1", "1"}, {" ", card.JokerSentinel}})},
			layout:       layout.Default(),
			wantWarnings: []string{"duplicate values: 1", "1 empty cells"},
		},
		{
			name:       "bad layout",
			deck:       deck.Deck{square},
			layout:     layout.Layout{CardsPerPage: 4},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewValidator(tt.deck, tt.layout).Validate()
			if len(res.Errors) != tt.wantErrors {
				t.Errorf("errors = %v, want %d", res.Errors, tt.wantErrors)
			}
			if res.Valid() != (tt.wantErrors == 0) {
				t.Errorf("Valid() = %v", res.Valid())
			}
			if len(res.Warnings) != len(tt.wantWarnings) {
				t.Fatalf("warnings = %v, want %v", res.Warnings, tt.wantWarnings)
			}
			for i, want := range tt.wantWarnings {
				if !strings.Contains(res.Warnings[i], want) {
					t.Errorf("warning %d = %q, want it to contain %q", i, res.Warnings[i], want)
				}
			}
		})
	}
}
