package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/layout"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Deck    deck.Deck
	Layout  layout.Layout
	Results ValidationResults
}

func NewValidator(d deck.Deck, l layout.Layout) *Validator {
	return &Validator{
		Deck:    d,
		Layout:  l,
		Results: ValidationResults{},
	}
}

// Validate checks the deck and layout. Errors block rendering; warnings
// flag cards that render but are probably not what was intended.
func (v *Validator) Validate() ValidationResults {
	if err := v.Layout.Validate(); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("layout: %v", err))
	}
	if len(v.Deck) == 0 {
		v.Results.Errors = append(v.Results.Errors, "deck has no cards")
		return v.Results
	}

	v.validateShapes()
	v.validateContent()

	return v.Results
}

func (v *Validator) validateShapes() {
	var first *card.Card
	for i := range v.Deck {
		c := v.Deck[i]
		if err := c.Validate(); err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		if first == nil {
			first = &v.Deck[i]
			continue
		}
		if c.Columns() != first.Columns() || c.Rows() != first.Rows() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d is %dx%d, first card is %dx%d", i+1, c.Columns(), c.Rows(), first.Columns(), first.Rows()))
		}
	}
}

func (v *Validator) validateContent() {
	for i, c := range v.Deck {
		seen := make(map[string]bool)
		var dups []string
		empty := 0
		for _, col := range c {
			for _, cell := range col {
				if cell.IsJoker() {
					continue
				}
				s := strings.TrimSpace(cell.String())
				if s == "" {
					empty++
					continue
				}
				if seen[s] {
					dups = append(dups, s)
				}
				seen[s] = true
			}
		}
		if len(dups) > 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d has duplicate values: %s", i+1, strings.Join(dups, ", ")))
		}
		if empty > 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d has %d empty cells", i+1, empty))
		}
	}
}
