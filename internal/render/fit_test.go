package render

import (
	"testing"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/layout"
)

func TestFitFontSizeWidthBound(t *testing.T) {
	c := card.FromStrings([][]string{{"1", "22"}, {"333", "4"}})
	m := newRecorder()

	// "333" is 1.5pt wide per point of font size.
	width := layout.PointsToMillimetres(1.5*20) + 0.01
	got := FitFontSize(m, c, width, 1000)
	if got != 20 {
		t.Errorf("FitFontSize() = %v, want 20", got)
	}
	if m.size != got {
		t.Errorf("measurer left at size %v, want %v", m.size, got)
	}
}

func TestFitFontSizeHeightBound(t *testing.T) {
	c := card.FromStrings([][]string{{"1"}})
	m := newRecorder()

	height := layout.PointsToMillimetres(10 * lineHeightFactor)
	if got := FitFontSize(m, c, 1000, height); got != 10 {
		t.Errorf("FitFontSize() = %v, want 10", got)
	}
}

func TestFitFontSizeMonotone(t *testing.T) {
	c := card.FromStrings([][]string{{"12", "345"}, {"6", "78"}})
	prev := 0.0
	for h := 1.0; h <= 40; h += 0.5 {
		got := FitFontSize(newRecorder(), c, 25, h)
		if got < prev {
			t.Fatalf("height %v gave size %v, smaller than %v at a lower height", h, got, prev)
		}
		prev = got
	}
}

func TestFitFontSizeIgnoresJoker(t *testing.T) {
	withJoker := card.Card{{card.Joker(), card.Text("7")}}
	withEmpty := card.Card{{card.Text(""), card.Text("7")}}
	a := FitFontSize(newRecorder(), withJoker, 20, 15)
	b := FitFontSize(newRecorder(), withEmpty, 20, 15)
	if a != b {
		t.Errorf("joker card fit %v, empty-cell card fit %v", a, b)
	}
}

func TestFitFontSizeOnlyJokers(t *testing.T) {
	c := card.Card{{card.Joker(), card.Joker()}}
	if got := FitFontSize(newRecorder(), c, 20, 100); got != FallbackFontSize {
		t.Errorf("FitFontSize() = %v, want fallback %v", got, FallbackFontSize)
	}
	if got := FitFontSize(newRecorder(), c, 20, 1); got < 1 || got >= FallbackFontSize {
		t.Errorf("fallback should still honour the height, got %v", got)
	}
}

func TestFitFontSizeFloor(t *testing.T) {
	c := card.FromStrings([][]string{{"a very long value indeed"}})
	if got := FitFontSize(newRecorder(), c, 0.1, 0.1); got != 1 {
		t.Errorf("FitFontSize() = %v, want 1", got)
	}
}
