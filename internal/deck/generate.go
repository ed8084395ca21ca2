package deck

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/arcanaland/bingo/internal/card"
)

// Kind selects the pool card values are drawn from.
type Kind string

const (
	Numbers Kind = "Numbers"
	Strings Kind = "Strings"
)

// Limits on generated decks. They keep a mistyped config value from
// allocating an unbounded pool.
const (
	MaxSize     = 100
	MaxPoolSize = 100_000
	MaxCount    = 10_000
)

// Settings describes how cards are generated. It is persisted in the
// [model] section of the config file.
type Settings struct {
	Title        string   `toml:"title"`
	Size         int      `toml:"size"`
	RangeMinimum int      `toml:"range_minimum"`
	RangeMaximum int      `toml:"range_maximum"`
	TypeOfBingo  Kind     `toml:"type_of_bingo"`
	Strings      []string `toml:"strings"`
	Ordered      bool     `toml:"ordered"`
	Joker        bool     `toml:"joker"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Title:        "Bingo-Maschine 4.0",
		Size:         5,
		RangeMinimum: 0,
		RangeMaximum: 100,
		TypeOfBingo:  Numbers,
		Strings:      []string{},
		Ordered:      true,
		Joker:        false,
	}
}

// Generate creates count cards of s.Size columns and rows.
func Generate(s Settings, count int, rng *rand.Rand) (Deck, error) {
	if s.Size < 1 || s.Size > MaxSize {
		return nil, fmt.Errorf("card size must be between 1 and %d, got %d", MaxSize, s.Size)
	}
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("card count must be between 1 and %d, got %d", MaxCount, count)
	}
	if s.Joker && s.Size%2 == 0 {
		return nil, fmt.Errorf("a joker needs a centre cell, card size %d is even", s.Size)
	}

	pool, err := s.pool()
	if err != nil {
		return nil, err
	}
	if need := s.Size * s.Size; len(pool) < need {
		return nil, fmt.Errorf("need at least %d distinct values for a %dx%d card, have %d", need, s.Size, s.Size, len(pool))
	}

	d := make(Deck, count)
	for i := range d {
		if s.Ordered && s.TypeOfBingo == Numbers {
			d[i] = orderedCard(pool, s.Size, rng)
		} else {
			d[i] = shuffledCard(pool, s.Size, rng)
		}
		if s.Joker {
			mid := s.Size / 2
			d[i][mid][mid] = card.Joker()
		}
	}
	return d, nil
}

func (s Settings) pool() ([]string, error) {
	switch s.TypeOfBingo {
	case Numbers, "":
		if s.RangeMaximum < s.RangeMinimum {
			return nil, fmt.Errorf("invalid range %d..%d", s.RangeMinimum, s.RangeMaximum)
		}
		// Unsigned subtraction cannot overflow once the bounds are ordered.
		span := uint64(s.RangeMaximum) - uint64(s.RangeMinimum)
		if span >= MaxPoolSize {
			return nil, fmt.Errorf("range %d..%d has more than %d values", s.RangeMinimum, s.RangeMaximum, MaxPoolSize)
		}
		pool := make([]string, 0, span+1)
		for i := 0; i <= int(span); i++ {
			pool = append(pool, strconv.Itoa(s.RangeMinimum+i))
		}
		return pool, nil
	case Strings:
		seen := make(map[string]bool)
		var pool []string
		for _, v := range s.Strings {
			if len(pool) == MaxPoolSize {
				return nil, fmt.Errorf("more than %d strings", MaxPoolSize)
			}
			v = strings.TrimSpace(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			pool = append(pool, v)
		}
		return pool, nil
	default:
		return nil, fmt.Errorf("unknown type of bingo: %q", s.TypeOfBingo)
	}
}

// orderedCard gives every column its own contiguous share of the pool and
// sorts the drawn values, like a classic B-I-N-G-O card.
func orderedCard(pool []string, size int, rng *rand.Rand) card.Card {
	c := make(card.Card, size)
	per := len(pool) / size
	for col := range c {
		lo := col * per
		hi := lo + per
		if col == size-1 {
			hi = len(pool)
		}
		idx := rng.Perm(hi - lo)[:size]
		sort.Ints(idx)
		c[col] = make([]card.Cell, size)
		for row, k := range idx {
			c[col][row] = card.Text(pool[lo+k])
		}
	}
	return c
}

func shuffledCard(pool []string, size int, rng *rand.Rand) card.Card {
	idx := rng.Perm(len(pool))
	c := make(card.Card, size)
	for col := range c {
		c[col] = make([]card.Cell, size)
		for row := range c[col] {
			c[col][row] = card.Text(pool[idx[col*size+row]])
		}
	}
	return c
}
