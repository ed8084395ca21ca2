package layout

import "fmt"

// A4 landscape page size in millimetres
const (
	PageWidth  = 297.0
	PageHeight = 210.0
)

// Every card carries its deck index in a line of IndexFontSize point text
// just below its bottom edge. LineHeightFactor scales a font size to the
// height of one text line.
const (
	IndexFontSize    = 8.0
	LineHeightFactor = 1.15
)

// IndexLabelHeight returns the height in millimetres of the index line.
func IndexLabelHeight() float64 {
	return PointsToMillimetres(IndexFontSize * LineHeightFactor)
}

// Point is an offset in millimetres relative to the page origin, before the
// page margin is applied.
type Point struct {
	X, Y float64
}

// Layout holds the page geometry used for a whole render session.
type Layout struct {
	OffsetX      float64 `toml:"offset_x"`
	OffsetY      float64 `toml:"offset_y"`
	CardWidth    float64 `toml:"card_width"`
	CardHeight   float64 `toml:"card_height"`
	Gap          float64 `toml:"gap"`
	CardsPerPage int     `toml:"-"`
}

// Default returns the standard two-by-two landscape layout.
func Default() Layout {
	return Layout{
		OffsetX:      10,
		OffsetY:      10,
		CardWidth:    133,
		CardHeight:   90,
		Gap:          10,
		CardsPerPage: 4,
	}
}

// Slots returns the card positions on a page in fill order:
// left-to-right, then top-to-bottom.
func (l Layout) Slots() []Point {
	dx := l.CardWidth + l.Gap
	dy := l.CardHeight + l.Gap
	return []Point{
		{X: 0, Y: 0},
		{X: dx, Y: 0},
		{X: 0, Y: dy},
		{X: dx, Y: dy},
	}[:l.CardsPerPage]
}

// Slot returns the page position and the zero-based page number of the card
// at deck index i.
func (l Layout) Slot(i int) (Point, int) {
	return l.Slots()[i%l.CardsPerPage], i / l.CardsPerPage
}

// Box returns the absolute card rectangle for a slot position, margins applied.
func (l Layout) Box(p Point) (x, y, w, h float64) {
	return p.X + l.OffsetX, p.Y + l.OffsetY, l.CardWidth, l.CardHeight
}

// Validate checks that the layout is usable and that every slot, index
// label included, fits on the page.
func (l Layout) Validate() error {
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return fmt.Errorf("card size must be positive, got %gx%g mm", l.CardWidth, l.CardHeight)
	}
	if l.OffsetX < 0 || l.OffsetY < 0 || l.Gap < 0 {
		return fmt.Errorf("offsets and gap must not be negative")
	}
	if l.CardsPerPage < 1 || l.CardsPerPage > 4 {
		return fmt.Errorf("cards per page must be between 1 and 4, got %d", l.CardsPerPage)
	}
	label := IndexLabelHeight()
	for _, s := range l.Slots() {
		x, y, w, h := l.Box(s)
		if x+w > PageWidth || y+h+label > PageHeight {
			return fmt.Errorf("card at (%g, %g) does not fit on a %gx%g mm page", s.X, s.Y, PageWidth, PageHeight)
		}
	}
	return nil
}
