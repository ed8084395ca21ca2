package render

import (
	"errors"
	"math"
	"strconv"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/layout"
)

// ErrJokerUnavailable is returned when a joker cell must be drawn but no
// joker raster was supplied.
var ErrJokerUnavailable = errors.New("joker image unavailable")

// Line widths and the card index size, in points.
const (
	borderWidth   = 1.0
	gridWidth     = 0.5
	indexFontSize = layout.IndexFontSize
)

// Share of a cell, in percent, that text may occupy.
const (
	textWidthPercent   = 80
	textHeightPercent  = 80
	headerWidthPercent = 60
)

// CellSize returns the column width and row height of c on a card box of
// the given layout. One row height is reserved for the header.
func CellSize(l layout.Layout, c card.Card) (colW, rowH float64) {
	return l.CardWidth / float64(c.Columns()), l.CardHeight / float64(c.Rows()+1)
}

// CardRenderer draws single cards onto a surface.
type CardRenderer struct {
	s      Surface
	layout layout.Layout
}

// NewCardRenderer returns a CardRenderer drawing onto s.
func NewCardRenderer(s Surface, l layout.Layout) *CardRenderer {
	return &CardRenderer{s: s, layout: l}
}

// Draw renders c at slot position pos. index is the card's 1-based position
// in the deck. jokerImage names the registered joker raster and may be empty
// when c has no joker. fontSize is the cell text size from FitFontSize.
func (r *CardRenderer) Draw(pos layout.Point, c card.Card, index int, jokerImage string, fontSize float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if jokerImage == "" && c.HasJoker() {
		return ErrJokerUnavailable
	}

	x, y, w, h := r.layout.Box(pos)
	colW, rowH := CellSize(r.layout, c)

	r.s.SetLineWidth(borderWidth)
	r.rect(x, y, w, h)
	r.s.SetLineWidth(gridWidth)

	r.s.SetFontStyle(StyleBold)
	// O is the widest header letter
	headerSize := fitText(r.s, "O",
		layout.PercentOf(headerWidthPercent, colW), layout.PercentOf(textHeightPercent, rowH))

	for col, cells := range c {
		cx := x + float64(col)*colW
		r.rect(cx, y, colW, rowH)

		r.s.SetFontStyle(StyleBold)
		r.s.SetFontSize(headerSize)
		r.centerText(card.HeaderLetter(col), cx, y, colW, rowH)

		r.s.SetFontStyle(StyleRegular)
		r.s.SetFontSize(fontSize)
		for row, cell := range cells {
			cy := y + float64(row+1)*rowH
			r.rect(cx, cy, colW, rowH)
			if cell.IsJoker() {
				side := math.Min(rowH, colW)
				r.image(jokerImage, cx+(colW-side)/2, cy+(rowH-side)/2, side, side)
				continue
			}
			r.centerText(cell.String(), cx, cy, colW, rowH)
		}
	}

	r.s.SetFontSize(indexFontSize)
	label := strconv.Itoa(index)
	tw, th := r.measure(label)
	r.text(label, x+w-tw, y+h+th)

	return r.s.Err()
}

// centerText places s in the middle of the box. The baseline sits a third
// of the line height below the box centre, which centres capitals.
func (r *CardRenderer) centerText(s string, x, y, w, h float64) {
	tw, th := r.measure(s)
	r.text(s, x+(w-tw)/2, y+h/2+th/3)
}

func (r *CardRenderer) measure(s string) (w, h float64) {
	w, h = r.s.MeasureText(s)
	return layout.PointsToMillimetres(w), layout.PointsToMillimetres(h)
}

func (r *CardRenderer) rect(x, y, w, h float64) {
	pt := layout.MillimetresToPoints
	r.s.Rect(pt(x), pt(y), pt(w), pt(h))
}

func (r *CardRenderer) text(s string, x, y float64) {
	pt := layout.MillimetresToPoints
	r.s.Text(pt(x), pt(y), s)
}

func (r *CardRenderer) image(name string, x, y, w, h float64) {
	pt := layout.MillimetresToPoints
	r.s.Image(name, pt(x), pt(y), pt(w), pt(h))
}
