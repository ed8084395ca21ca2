package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/bingo/internal/card"
)

// Deck is an ordered collection of cards. A card's 1-based position is the
// index printed on it.
type Deck []card.Card

// LoadDeck reads a deck from a JSON file.
func LoadDeck(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening deck: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return d, nil
}

// Decode reads a JSON deck: an array of cards, each an array of columns of
// cell values. A null value or card.JokerSentinel marks a joker.
func Decode(r io.Reader) (Deck, error) {
	var d Deck
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return d, nil
}

// Encode writes the deck as indented JSON.
func (d Deck) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// SaveDeck writes the deck to a JSON file.
func (d Deck) SaveDeck(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer f.Close()

	if err := d.Encode(f); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}
	return nil
}

// HasJoker reports whether any card in the deck contains a joker.
func (d Deck) HasJoker() bool {
	for _, c := range d {
		if c.HasJoker() {
			return true
		}
	}
	return false
}

// Validate checks the shape of every card.
func (d Deck) Validate() error {
	for i, c := range d {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i+1, err)
		}
	}
	return nil
}
