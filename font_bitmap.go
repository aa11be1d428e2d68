package charrom

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// TrueType glyph rasterization: turns font glyphs into Characters at
// the character set's cell size, so an entire ROM can be generated
// from a system font.

// Rasterizer pre-configures a TrueType font for rendering glyphs into
// fixed-size pixel grids.
type Rasterizer struct {
	font   *truetype.Font
	cellW  int
	cellH  int
	dpi    float64
	size   float64
	thresh uint8
	hint   font.Hinting
}

// RasterizerOption is a functional option for configuring a
// Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithDPI sets the rendering DPI (default 72).
func WithDPI(dpi float64) RasterizerOption {
	return func(r *Rasterizer) { r.dpi = dpi }
}

// WithFontSize overrides the point size (default: the cell height).
func WithFontSize(size float64) RasterizerOption {
	return func(r *Rasterizer) { r.size = size }
}

// WithAlphaThreshold sets the coverage level above which an
// anti-aliased pixel counts as foreground. The default of 64 (25%)
// keeps thin stems and the dots on i/j that a 50% cut would lose.
func WithAlphaThreshold(threshold uint8) RasterizerOption {
	return func(r *Rasterizer) { r.thresh = threshold }
}

// WithHinting sets the glyph hinting mode (default full).
func WithHinting(h font.Hinting) RasterizerOption {
	return func(r *Rasterizer) { r.hint = h }
}

// NewRasterizer parses TTF data and prepares it for rendering into
// cellW x cellH characters.
func NewRasterizer(ttf []byte, cellW, cellH int, opts ...RasterizerOption) (*Rasterizer, error) {
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("invalid cell size %dx%d", cellW, cellH)
	}
	parsed, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	r := &Rasterizer{
		font:   parsed,
		cellW:  cellW,
		cellH:  cellH,
		dpi:    72,
		size:   float64(cellH),
		thresh: 64,
		hint:   font.HintingFull,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// LoadRasterizer reads a TTF file and builds a Rasterizer for it.
func LoadRasterizer(path string, cellW, cellH int, opts ...RasterizerOption) (*Rasterizer, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	return NewRasterizer(ttf, cellW, cellH, opts...)
}

// RasterizeRune renders one glyph into a Character. The glyph is
// drawn anti-aliased into an alpha image, positioned on a baseline
// derived from the font's ascent/descent so descenders are not
// clipped, then thresholded into the boolean grid.
func (r *Rasterizer) RasterizeRune(ch rune) Character {
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    r.size,
		DPI:     r.dpi,
		Hinting: r.hint,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, r.cellW, r.cellH))

	ctx := freetype.NewContext()
	ctx.SetDPI(r.dpi)
	ctx.SetFont(r.font)
	ctx.SetFontSize(r.size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(r.hint)

	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	baselineY := (r.cellH + ascent - descent) / 2

	// Draw errors leave the cell empty, which is the right fallback
	// for missing glyphs anyway.
	_, _ = ctx.DrawString(string(ch), freetype.Pt(0, baselineY))

	c := NewCharacter(r.cellW, r.cellH)
	for y := 0; y < r.cellH; y++ {
		for x := 0; x < r.cellW; x++ {
			if img.AlphaAt(x, y).A > r.thresh {
				c.Pixels[y][x] = true
			}
		}
	}
	return c
}

// RasterizeRunes renders a rune range into characters in order,
// synchronously. For long ranges with progress and cancellation, use
// Start.
func (r *Rasterizer) RasterizeRunes(runes []rune) []Character {
	out := make([]Character, len(runes))
	for i, ch := range runes {
		out[i] = r.RasterizeRune(ch)
	}
	return out
}

// RuneRange returns the inclusive run of runes [first, last] in
// order, a convenience for building ROM code-point layouts.
func RuneRange(first, last rune) []rune {
	if last < first {
		return nil
	}
	out := make([]rune, 0, last-first+1)
	for ch := first; ch <= last; ch++ {
		out = append(out, ch)
	}
	return out
}
