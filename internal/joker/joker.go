// Package joker turns the joker glyph into the small raster that is embedded
// into every joker cell of a deck.
package joker

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Size is the edge length of the joker raster in pixels.
const Size = 50

// supersample renders the vector glyph at a multiple of Size before
// downsampling.
const supersample = 4

// ErrRasterContext is returned when the off-screen canvas cannot be set up
// for the supplied markup.
var ErrRasterContext = errors.New("cannot create joker rendering context")

// White is the default opaque background.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Raster is a rendered joker ready for embedding.
type Raster struct {
	Image image.Image
	PNG   []byte
}

// Rasterize renders SVG markup, or decodes a PNG, JPEG or GIF image, into a
// Size x Size raster painted over an opaque bg.
func Rasterize(data []byte, bg color.Color) (*Raster, error) {
	var (
		img image.Image
		err error
	)
	if isBitmap(data) {
		img, err = decodeBitmap(data, bg)
	} else {
		img, err = renderSVG(data, bg)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode joker: %w", err)
	}
	return &Raster{Image: img, PNG: buf.Bytes()}, nil
}

func renderSVG(markup []byte, bg color.Color) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterContext, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: empty view box", ErrRasterContext)
	}

	w := Size * supersample
	canvas := image.NewRGBA(image.Rect(0, 0, w, w))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	tw, th := fit(icon.ViewBox.W, icon.ViewBox.H, float64(w))
	icon.SetTarget((float64(w)-tw)/2, (float64(w)-th)/2, tw, th)
	scanner := rasterx.NewScannerGV(w, w, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, w, scanner), 1.0)

	return resize.Resize(Size, Size, canvas, resize.Lanczos3), nil
}

func decodeBitmap(data []byte, bg color.Color) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode joker image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, errors.New("joker image has no pixels")
	}
	tw, th := fit(float64(b.Dx()), float64(b.Dy()), Size)
	scaled := resize.Resize(uint(math.Max(1, math.Round(tw))), uint(math.Max(1, math.Round(th))), src, resize.Lanczos3)

	out := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	sb := scaled.Bounds()
	at := image.Pt((Size-sb.Dx())/2, (Size-sb.Dy())/2)
	draw.Draw(out, sb.Sub(sb.Min).Add(at), scaled, sb.Min, draw.Over)
	return out, nil
}

// fit scales a w by h box uniformly to fit a side by side square.
func fit(w, h, side float64) (float64, float64) {
	scale := math.Min(side/w, side/h)
	return w * scale, h * scale
}

var bitmapMagic = [][]byte{
	[]byte("\x89PNG\r\n\x1a\n"),
	[]byte("\xff\xd8\xff"),
	[]byte("GIF87a"),
	[]byte("GIF89a"),
}

func isBitmap(data []byte) bool {
	for _, m := range bitmapMagic {
		if bytes.HasPrefix(data, m) {
			return true
		}
	}
	return false
}

// Source rasterizes joker data at most once, on first use.
type Source struct {
	data []byte
	bg   color.Color

	once   sync.Once
	raster *Raster
	err    error
}

// NewSource returns a Source for the given markup. A nil bg means White.
func NewSource(data []byte, bg color.Color) *Source {
	if bg == nil {
		bg = White
	}
	return &Source{data: data, bg: bg}
}

// Raster returns the rendered joker, rasterizing on the first call only.
// A Source without data returns a nil raster and no error.
func (s *Source) Raster() (*Raster, error) {
	s.once.Do(func() {
		if len(s.data) == 0 {
			return
		}
		s.raster, s.err = Rasterize(s.data, s.bg)
	})
	return s.raster, s.err
}

// ParseBackground parses a hex colour such as "#ffffff". An empty string
// yields White.
func ParseBackground(hex string) (color.Color, error) {
	if hex == "" {
		return White, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid joker background %q: %w", hex, err)
	}
	return c, nil
}
