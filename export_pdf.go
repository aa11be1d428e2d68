package charrom

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// PDF sheet export: the character grid rendered as filled rectangles
// on an A4 page, one page per sheet, suitable for printable reference
// cards. Layout is a pure function of (characters, config, options).

// PDFOptions controls the PDF sheet layout.
type PDFOptions struct {
	// Title is printed above the grid; empty omits it.
	Title string
	// Columns is the number of characters per row (default 16).
	Columns int
	// PixelSize is the printed size of one character pixel in
	// millimeters (default 1.0).
	PixelSize float64
	// Labels prints the index under each character cell.
	Labels bool
}

func (o PDFOptions) normalized() PDFOptions {
	if o.Columns < 1 {
		o.Columns = 16
	}
	if o.PixelSize <= 0 {
		o.PixelSize = 1.0
	}
	return o
}

// ExportPDF renders the character set into a PDF document written to
// w.
func ExportPDF(w io.Writer, characters []Character, cfg CharacterSetConfig, opts PDFOptions) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts = opts.normalized()

	const margin = 15.0
	const cellGap = 2.0
	labelSpace := 0.0
	if opts.Labels {
		labelSpace = 4.0
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	y := margin
	if opts.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(margin, y+5, opts.Title)
		y += 12
	}
	pdf.SetFont("Helvetica", "", 7)

	cellW := float64(cfg.Width)*opts.PixelSize + cellGap
	cellH := float64(cfg.Height)*opts.PixelSize + cellGap + labelSpace

	x := margin
	col := 0
	for i, c := range characters {
		if y+cellH > pageH-margin {
			pdf.AddPage()
			y = margin
		}

		pdf.SetFillColor(0, 0, 0)
		for py := 0; py < cfg.Height; py++ {
			for px := 0; px < cfg.Width; px++ {
				if !c.At(py, px) {
					continue
				}
				pdf.Rect(x+float64(px)*opts.PixelSize, y+float64(py)*opts.PixelSize,
					opts.PixelSize, opts.PixelSize, "F")
			}
		}
		if opts.Labels {
			pdf.Text(x, y+float64(cfg.Height)*opts.PixelSize+3, fmt.Sprintf("%d", i))
		}

		col++
		x += cellW
		if col >= opts.Columns || x+cellW > pageW-margin {
			col = 0
			x = margin
			y += cellH
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
