package charrom

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Character sheet image import: reads a raster image of a character
// grid (screenshots, scanned datasheets, exported sheets) and slices
// it back into characters.

// SheetImportOptions controls how a sheet image is binarized and
// sliced.
type SheetImportOptions struct {
	// Threshold is the grayscale cutoff (0-255) above which a pixel
	// counts as foreground; 0 means the default of 128.
	Threshold float32
	// Invert treats dark pixels as foreground, for black-on-white
	// sources such as scanned datasheets.
	Invert bool
}

// ImportSheetImage reads an image file, thresholds it to a binary
// grid, and slices it into cfg-sized characters row-major. Partial
// cells at the right and bottom edges are dropped; the grid must
// start at the image origin with no gutters.
func ImportSheetImage(path string, cfg CharacterSetConfig, opts SheetImportOptions) ([]Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	if img.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer img.Close()

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 128
	}

	binary := gocv.NewMat()
	defer binary.Close()
	thresholdType := gocv.ThresholdBinary
	if opts.Invert {
		thresholdType = gocv.ThresholdBinaryInv
	}
	gocv.Threshold(img, &binary, threshold, 255, thresholdType)

	columns := binary.Cols() / cfg.Width
	rows := binary.Rows() / cfg.Height
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("image %dx%d is smaller than one %dx%d character",
			binary.Cols(), binary.Rows(), cfg.Width, cfg.Height)
	}

	characters := make([]Character, 0, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			c := NewCharacter(cfg.Width, cfg.Height)
			for y := 0; y < cfg.Height; y++ {
				for x := 0; x < cfg.Width; x++ {
					v := binary.GetUCharAt(row*cfg.Height+y, col*cfg.Width+x)
					c.Pixels[y][x] = v > 128
				}
			}
			characters = append(characters, c)
		}
	}
	return characters, nil
}
