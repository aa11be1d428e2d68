package charrom

import "math"

// Character scaling. Scaling is lossy by design: the scaled canvas is
// anchor-positioned back into the original dimensions, so growing
// clips and shrinking leaves background around the result. Use
// ResizeCharacter when the output dimensions should change.

// ScaleAlgorithm selects how scaled pixels sample the source.
type ScaleAlgorithm string

const (
	// ScaleNearest samples each output pixel from the nearest source
	// pixel. Fast, blocky, exact for integer factors.
	ScaleNearest ScaleAlgorithm = "nearest"
	// ScaleThreshold computes the exact geometric coverage of each
	// output pixel's source footprint and lights it when coverage
	// reaches the threshold. Better fidelity when shrinking.
	ScaleThreshold ScaleAlgorithm = "threshold"
)

// DefaultScaleThreshold is the coverage fraction at which a
// threshold-scaled pixel turns on.
const DefaultScaleThreshold = 0.5

// ScaleCharacter scales a character by the given factor using the
// selected algorithm, then anchors the scaled canvas back into the
// original width x height frame. A factor of 1 is the identity and
// returns the input as-is.
func ScaleCharacter(c Character, scale float64, anchor Anchor, algorithm ScaleAlgorithm) Character {
	return scaleWithThreshold(c, scale, anchor, algorithm, DefaultScaleThreshold)
}

func scaleWithThreshold(c Character, scale float64, anchor Anchor, algorithm ScaleAlgorithm, threshold float64) Character {
	if scale == 1 {
		return c
	}
	w, h := c.Width(), c.Height()
	scaledW := int(math.Round(float64(w) * scale))
	scaledH := int(math.Round(float64(h) * scale))

	var scaled Character
	if algorithm == ScaleThreshold {
		scaled = scaleAreaThreshold(c, scale, scaledW, scaledH, threshold)
	} else {
		scaled = scaleNearest(c, scale, scaledW, scaledH)
	}

	offX, offY := anchorOffsets(anchor, w, h, scaledW, scaledH)
	return copyAtOffset(scaled, w, h, offX, offY)
}

// scaleNearest builds the scaled canvas by sampling
// src[floor(row/scale)][floor(col/scale)], clamped to source bounds.
func scaleNearest(c Character, scale float64, scaledW, scaledH int) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(scaledW, scaledH)
	for row := 0; row < scaledH; row++ {
		srcRow := int(math.Floor(float64(row) / scale))
		if srcRow >= h {
			srcRow = h - 1
		}
		for col := 0; col < scaledW; col++ {
			srcCol := int(math.Floor(float64(col) / scale))
			if srcCol >= w {
				srcCol = w - 1
			}
			out.Pixels[row][col] = c.Pixels[srcRow][srcCol]
		}
	}
	return out
}

// scaleAreaThreshold builds the scaled canvas by exact area coverage:
// each output pixel's footprint in source space is the rectangle
// [row/scale, (row+1)/scale) x [col/scale, (col+1)/scale), and the
// pixel lights up when the foreground fraction of that rectangle
// reaches the threshold.
func scaleAreaThreshold(c Character, scale float64, scaledW, scaledH int, threshold float64) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(scaledW, scaledH)
	for row := 0; row < scaledH; row++ {
		top := float64(row) / scale
		bottom := float64(row+1) / scale
		for col := 0; col < scaledW; col++ {
			left := float64(col) / scale
			right := float64(col+1) / scale

			var covered float64
			for srcRow := int(math.Floor(top)); srcRow < h && float64(srcRow) < bottom; srcRow++ {
				overlapY := math.Min(bottom, float64(srcRow+1)) - math.Max(top, float64(srcRow))
				if overlapY <= 0 {
					continue
				}
				for srcCol := int(math.Floor(left)); srcCol < w && float64(srcCol) < right; srcCol++ {
					if !c.Pixels[srcRow][srcCol] {
						continue
					}
					overlapX := math.Min(right, float64(srcCol+1)) - math.Max(left, float64(srcCol))
					if overlapX > 0 {
						covered += overlapX * overlapY
					}
				}
			}

			total := (bottom - top) * (right - left)
			if total > 0 && covered/total >= threshold {
				out.Pixels[row][col] = true
			}
		}
	}
	return out
}
