package render

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// op is one recorded drawing call.
type op struct {
	kind string
	text string
	page int
	x, y float64
	w, h float64
}

// recorder is a Surface that records calls instead of drawing. Text is
// half as wide per character as the font size, and only Latin-1 plus the
// euro sign can be drawn.
type recorder struct {
	ops      []op
	page     int
	size     float64
	style    string
	images   map[string][]byte
	register int
	err      error
}

var _ Surface = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{page: 1, size: 12, images: map[string][]byte{}}
}

func (r *recorder) SetFontSize(size float64) { r.size = size }
func (r *recorder) MeasureText(s string) (w, h float64) {
	return 0.5 * r.size * float64(utf8.RuneCountInString(s)), r.size * lineHeightFactor
}
func (r *recorder) SetLineWidth(w float64)    {}
func (r *recorder) SetFontStyle(style string) { r.style = style }
func (r *recorder) Rect(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "rect", page: r.page, x: x, y: y, w: w, h: h})
}
func (r *recorder) Text(x, y float64, s string) {
	r.ops = append(r.ops, op{kind: "text", text: s, page: r.page, x: x, y: y, w: r.size})
}
func (r *recorder) CheckText(s string) error {
	for _, c := range s {
		if c > unicode.MaxLatin1 && c != '€' {
			return fmt.Errorf("%w: %q", ErrUnsupportedText, c)
		}
	}
	return nil
}
func (r *recorder) RegisterImage(name string, png []byte) {
	r.register++
	r.images[name] = png
}
func (r *recorder) Image(name string, x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "image", text: name, page: r.page, x: x, y: y, w: w, h: h})
}
func (r *recorder) AddPage()                { r.page++ }
func (r *recorder) Err() error              { return r.err }
func (r *recorder) Save(path string) error  { return nil }
func (r *recorder) Write(w io.Writer) error { return nil }

func (r *recorder) filter(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.filter("text") {
		out = append(out, o.text)
	}
	return out
}
