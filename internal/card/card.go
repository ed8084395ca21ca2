package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// JokerSentinel marks a joker cell in serialized decks. It is only
// interpreted at the data boundary; rendering code uses Cell.IsJoker.
const JokerSentinel = "\x00JOKER\x00"

// HeaderLabel provides the header letters, cycled across columns.
const HeaderLabel = "BINGO"

var (
	ErrEmptyCard      = errors.New("card has no cells")
	ErrNotRectangular = errors.New("card columns differ in length")
)

// Cell is a single card value: either text or the joker.
type Cell struct {
	text  string
	joker bool
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{text: s} }

// Joker returns a joker cell.
func Joker() Cell { return Cell{joker: true} }

// ParseCell turns a serialized value into a cell, recognising JokerSentinel.
func ParseCell(s string) Cell {
	if s == JokerSentinel {
		return Joker()
	}
	return Text(s)
}

func (c Cell) IsJoker() bool { return c.joker }

// String returns the cell text, or an empty string for a joker.
func (c Cell) String() string {
	if c.joker {
		return ""
	}
	return c.text
}

// MarshalJSON encodes a joker as null and text as a string.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.joker {
		return []byte("null"), nil
	}
	return json.Marshal(c.text)
}

// UnmarshalJSON accepts a string, the joker sentinel, or null for a joker.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Joker()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cell must be a string or null: %w", err)
	}
	*c = ParseCell(s)
	return nil
}

// Card is a bingo sheet stored column-major: Card[col][row].
type Card [][]Cell

// Columns returns the number of columns.
func (c Card) Columns() int { return len(c) }

// Rows returns the number of playable rows, excluding the header.
func (c Card) Rows() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Validate reports whether the card is non-empty and rectangular.
func (c Card) Validate() error {
	if c.Columns() == 0 || c.Rows() == 0 {
		return ErrEmptyCard
	}
	for i, col := range c {
		if len(col) != c.Rows() {
			return fmt.Errorf("%w: column %d has %d rows, column 0 has %d", ErrNotRectangular, i, len(col), c.Rows())
		}
	}
	return nil
}

// HasJoker reports whether any cell is a joker.
func (c Card) HasJoker() bool {
	for _, col := range c {
		for _, cell := range col {
			if cell.IsJoker() {
				return true
			}
		}
	}
	return false
}

// Longest returns the longest text value by character count, ignoring
// jokers. Ties keep the first value found in column-major order.
func (c Card) Longest() string {
	longest, n := "", 0
	for _, col := range c {
		for _, cell := range col {
			if cell.IsJoker() {
				continue
			}
			if l := utf8.RuneCountInString(cell.text); l > n {
				longest, n = cell.text, l
			}
		}
	}
	return longest
}

// FromStrings builds a card from serialized column values.
func FromStrings(cols [][]string) Card {
	c := make(Card, len(cols))
	for i, col := range cols {
		c[i] = make([]Cell, len(col))
		for j, s := range col {
			c[i][j] = ParseCell(s)
		}
	}
	return c
}

// HeaderLetter returns the header letter for column i.
func HeaderLetter(i int) string {
	return string(HeaderLabel[i%len(HeaderLabel)])
}
