// Package render lays out bingo cards and draws them onto a paginated
// document, four cards to a landscape page.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/joker"
	"github.com/arcanaland/bingo/internal/layout"
)

// DefaultFileName is the name the rendered document is saved under.
const DefaultFileName = "bingo-cards.pdf"

// jokerImageName is the name the joker raster is registered under.
const jokerImageName = "joker"

var ErrEmptyDeck = errors.New("deck has no cards")

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger progress is reported to.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// Renderer draws whole decks. A Renderer holds no per-render state and may
// be reused, but a Surface must not be shared between renders.
type Renderer struct {
	layout layout.Layout
	logger *log.Logger
}

// New returns a Renderer for the given layout.
func New(l layout.Layout, opts ...Option) *Renderer {
	r := &Renderer{layout: l, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pages returns the number of pages needed for n cards.
func Pages(n, perPage int) int {
	return (n + perPage - 1) / perPage
}

// Render draws d onto s. s must have its first page started. All input is
// checked before the first draw call, so a failed render leaves s untouched
// unless a drawing primitive itself fails.
func (r *Renderer) Render(s Surface, d deck.Deck, j *joker.Source) error {
	if err := r.layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	if len(d) == 0 {
		return ErrEmptyDeck
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := checkText(s, d); err != nil {
		return err
	}

	var jokerImage string
	if d.HasJoker() {
		raster, err := r.joker(j)
		if err != nil {
			return err
		}
		s.RegisterImage(jokerImageName, raster.PNG)
		jokerImage = jokerImageName
	}

	cr := NewCardRenderer(s, r.layout)
	for i, c := range d {
		pos, page := r.layout.Slot(i)
		if i > 0 && i%r.layout.CardsPerPage == 0 {
			s.AddPage()
			r.logger.Debug("started page", "page", page+1)
		}

		colW, rowH := CellSize(r.layout, c)
		size := FitFontSize(s, c,
			layout.PercentOf(textWidthPercent, colW), layout.PercentOf(textHeightPercent, rowH))

		if err := cr.Draw(pos, c, i+1, jokerImage, size); err != nil {
			return fmt.Errorf("card %d: %w", i+1, err)
		}
	}

	r.logger.Debug("rendered deck", "cards", len(d), "pages", Pages(len(d), r.layout.CardsPerPage))
	return nil
}

func checkText(s Surface, d deck.Deck) error {
	for i, c := range d {
		for _, col := range c {
			for _, cell := range col {
				if cell.IsJoker() {
					continue
				}
				if err := s.CheckText(cell.String()); err != nil {
					return fmt.Errorf("card %d: %w", i+1, err)
				}
			}
		}
	}
	return nil
}

func (r *Renderer) joker(j *joker.Source) (*joker.Raster, error) {
	if j == nil {
		return nil, ErrJokerUnavailable
	}
	raster, err := j.Raster()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJokerUnavailable, err)
	}
	if raster == nil {
		return nil, ErrJokerUnavailable
	}
	return raster, nil
}

// RenderFile renders d into a new PDF document and saves it to path. Nothing
// is written when rendering fails.
func (r *Renderer) RenderFile(d deck.Deck, j *joker.Source, path string) error {
	s := NewPDF()
	if err := r.Render(s, d, j); err != nil {
		return err
	}
	if err := s.Save(path); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	r.logger.Info("saved document", "path", path, "pages", s.PageCount())
	return nil
}

// RenderTo renders d into a new PDF document and writes it to w.
func (r *Renderer) RenderTo(w io.Writer, d deck.Deck, j *joker.Source) error {
	s := NewPDF()
	if err := r.Render(s, d, j); err != nil {
		return err
	}
	return s.Write(w)
}
