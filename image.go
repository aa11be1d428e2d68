package charrom

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// PNG sheet rendering: characters drawn onto an RGBA image at an
// integer pixel scale, arranged in a grid.

// SheetOptions controls sheet rendering. The zero value renders 16
// characters per row at scale 1 in white-on-black.
type SheetOptions struct {
	// Columns is the number of characters per sheet row.
	Columns int
	// Scale is the integer pixel size of one character pixel.
	Scale int
	// Foreground and Background are the cell colors; zero values
	// mean white on black.
	Foreground color.RGBA
	Background color.RGBA
}

func (o SheetOptions) normalized() SheetOptions {
	if o.Columns < 1 {
		o.Columns = 16
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	zero := color.RGBA{}
	if o.Foreground == zero {
		o.Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if o.Background == zero {
		o.Background = color.RGBA{A: 255}
	}
	return o
}

// RenderCharacterImage draws a single character into a fresh RGBA
// image at the given integer scale.
func RenderCharacterImage(c Character, scale int, fg, bg color.RGBA) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w, h := c.Width(), c.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	drawCharacter(img, c, 0, 0, scale, fg, bg)
	return img
}

// drawCharacter renders one character at (startX, startY) with
// scaling.
func drawCharacter(img *image.RGBA, c Character, startX, startY, scale int, fg, bg color.RGBA) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			px := bg
			if c.Pixels[y][x] {
				px = fg
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.SetRGBA(startX+x*scale+sx, startY+y*scale+sy, px)
				}
			}
		}
	}
}

// RenderSheet draws a whole character set as a grid image. Cells on
// an incomplete last row are filled with the background color.
func RenderSheet(characters []Character, cfg CharacterSetConfig, opts SheetOptions) *image.RGBA {
	opts = opts.normalized()
	columns := opts.Columns
	if columns > len(characters) && len(characters) > 0 {
		columns = len(characters)
	}
	rows := (len(characters) + columns - 1) / columns
	if rows < 1 {
		rows = 1
	}

	cellW := cfg.Width * opts.Scale
	cellH := cfg.Height * opts.Scale
	img := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	for y := 0; y < rows*cellH; y++ {
		for x := 0; x < columns*cellW; x++ {
			img.SetRGBA(x, y, opts.Background)
		}
	}

	for i, c := range characters {
		col, row := i%columns, i/columns
		drawCharacter(img, c, col*cellW, row*cellH, opts.Scale, opts.Foreground, opts.Background)
	}
	return img
}

// WriteSheetPNG renders the set and PNG-encodes it to w.
func WriteSheetPNG(w io.Writer, characters []Character, cfg CharacterSetConfig, opts SheetOptions) error {
	if err := png.Encode(w, RenderSheet(characters, cfg, opts)); err != nil {
		return fmt.Errorf("encoding sheet PNG: %w", err)
	}
	return nil
}

// SaveSheetPNG renders the set and writes it to a PNG file.
func SaveSheetPNG(path string, characters []Character, cfg CharacterSetConfig, opts SheetOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteSheetPNG(f, characters, cfg, opts)
}
