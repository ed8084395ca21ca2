package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnitConversion(t *testing.T) {
	if got := MillimetresToPoints(25.4); math.Abs(got-72) > 1e-9 {
		t.Errorf("MillimetresToPoints(25.4) = %v, want 72", got)
	}
	if got := PointsToMillimetres(72); math.Abs(got-25.4) > 1e-9 {
		t.Errorf("PointsToMillimetres(72) = %v, want 25.4", got)
	}
	for _, mm := range []float64{0, 1, 10, 133, 297.5} {
		if got := PointsToMillimetres(MillimetresToPoints(mm)); math.Abs(got-mm) > 1e-9 {
			t.Errorf("round trip of %v mm = %v", mm, got)
		}
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		p, x, want float64
	}{
		{50, 10, 5},
		{100, 133, 133},
		{0, 90, 0},
		{80, 25, 20},
	}
	for _, tt := range tests {
		if got := PercentOf(tt.p, tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PercentOf(%v, %v) = %v, want %v", tt.p, tt.x, got, tt.want)
		}
	}
}

func TestDefaultSlots(t *testing.T) {
	l := Default()
	want := []Point{{0, 0}, {143, 0}, {0, 100}, {143, 100}}
	if diff := cmp.Diff(want, l.Slots()); diff != "" {
		t.Errorf("Slots() mismatch (-want +got):\n%s", diff)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestSlotAssignment(t *testing.T) {
	l := Default()
	for i := 0; i < 13; i++ {
		pos, page := l.Slot(i)
		if pos != l.Slots()[i%4] {
			t.Errorf("Slot(%d) position = %v, want %v", i, pos, l.Slots()[i%4])
		}
		if page != i/4 {
			t.Errorf("Slot(%d) page = %d, want %d", i, page, i/4)
		}
	}
}

func TestIndexLabelHeight(t *testing.T) {
	if got, want := IndexLabelHeight(), 8*1.15*25.4/72; math.Abs(got-want) > 1e-9 {
		t.Errorf("IndexLabelHeight() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr bool
	}{
		{"default", func(*Layout) {}, false},
		{"zero width", func(l *Layout) { l.CardWidth = 0 }, true},
		{"negative gap", func(l *Layout) { l.Gap = -1 }, true},
		{"too wide", func(l *Layout) { l.CardWidth = 150 }, true},
		{"too tall", func(l *Layout) { l.CardHeight = 100 }, true},
		{"index label off page", func(l *Layout) { l.CardHeight = 95 }, true},
		{"only the label overflows", func(l *Layout) { l.CardHeight = 94 }, true},
		{"label just fits", func(l *Layout) { l.CardHeight = 93 }, false},
		{"two per page", func(l *Layout) { l.CardsPerPage = 2 }, false},
		{"five per page", func(l *Layout) { l.CardsPerPage = 5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(&l)
			if err := l.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
