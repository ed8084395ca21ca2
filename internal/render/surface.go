package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/arcanaland/bingo/internal/layout"
)

// Measurer measures text at the current font size.
type Measurer interface {
	SetFontSize(size float64)
	// MeasureText returns the rendered width and height of s in points.
	MeasureText(s string) (w, h float64)
}

// Surface is the drawing target of a render session. All coordinates are
// in points from the top-left page corner.
type Surface interface {
	Measurer
	SetLineWidth(w float64)
	SetFontStyle(style string)
	Rect(x, y, w, h float64)
	Text(x, y float64, s string)
	// CheckText reports an error wrapping ErrUnsupportedText when s cannot
	// be drawn with the current font.
	CheckText(s string) error
	RegisterImage(name string, png []byte)
	Image(name string, x, y, w, h float64)
	AddPage()
	Err() error
	Save(path string) error
	Write(w io.Writer) error
}

// Font styles accepted by SetFontStyle.
const (
	StyleRegular = ""
	StyleBold    = "B"
)

var ErrUnsupportedText = errors.New("text cannot be encoded for the document font")

const lineHeightFactor = layout.LineHeightFactor

// PDF is a Surface backed by an fpdf document: A4 landscape, measured in points.
type PDF struct {
	doc *fpdf.Fpdf
	// tr converts UTF-8 text to the code page of the core fonts.
	tr func(string) string
}

var _ Surface = (*PDF)(nil)

// NewPDF creates a document with its first page already added.
func NewPDF() *PDF {
	doc := fpdf.New("L", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", StyleRegular, 12)
	doc.AddPage()
	return &PDF{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (p *PDF) SetLineWidth(w float64)    { p.doc.SetLineWidth(w) }
func (p *PDF) SetFontSize(size float64)  { p.doc.SetFontSize(size) }
func (p *PDF) SetFontStyle(style string) { p.doc.SetFontStyle(style) }
func (p *PDF) Rect(x, y, w, h float64)   { p.doc.Rect(x, y, w, h, "D") }
func (p *PDF) Text(x, y float64, s string) {
	p.doc.Text(x, y, p.tr(s))
}

// CheckText fails on any rune the core fonts have no glyph for. The
// translator maps such runes to '.', so a '.' for any other rune means the
// rune would be lost.
func (p *PDF) CheckText(s string) error {
	for _, r := range s {
		if r == '.' {
			continue
		}
		if p.tr(string(r)) == "." {
			return fmt.Errorf("%w: %q", ErrUnsupportedText, r)
		}
	}
	return nil
}

func (p *PDF) MeasureText(s string) (w, h float64) {
	size, _ := p.doc.GetFontSize()
	return p.doc.GetStringWidth(p.tr(s)), size * lineHeightFactor
}

func (p *PDF) RegisterImage(name string, png []byte) {
	p.doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
}

func (p *PDF) Image(name string, x, y, w, h float64) {
	p.doc.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// AddPage starts a new landscape A4 page.
func (p *PDF) AddPage() { p.doc.AddPage() }

// PageCount returns the number of pages started so far.
func (p *PDF) PageCount() int { return p.doc.PageCount() }

func (p *PDF) Err() error { return p.doc.Error() }

func (p *PDF) Save(path string) error { return p.doc.OutputFileAndClose(path) }

func (p *PDF) Write(w io.Writer) error { return p.doc.Output(w) }
