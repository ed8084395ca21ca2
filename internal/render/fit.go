package render

import (
	"math"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/layout"
)

// FallbackFontSize is used when the text to fit has no width, e.g. for a
// card made only of jokers.
const FallbackFontSize = 12

// FitFontSize returns the font size in points for the cell text of c so
// that its longest value fits a box of width x height millimetres.
// Jokers are ignored. It leaves m at the returned size.
func FitFontSize(m Measurer, c card.Card, width, height float64) float64 {
	return fitText(m, c.Longest(), width, height)
}

// fitText starts from the size at which s spans the full width, then steps
// down one point at a time until a line of text also fits the height.
func fitText(m Measurer, s string, width, height float64) float64 {
	m.SetFontSize(1)
	unit, _ := m.MeasureText(s)

	size := float64(FallbackFontSize)
	if w := layout.PointsToMillimetres(unit); w > 0 {
		size = math.Floor(width / w)
	}
	size = math.Max(size, 1)

	for ; size > 1; size-- {
		m.SetFontSize(size)
		if _, h := m.MeasureText(s); layout.PointsToMillimetres(h) <= height {
			return size
		}
	}
	m.SetFontSize(size)
	return size
}
