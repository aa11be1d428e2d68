package charrom

// Geometric transforms over characters. All functions are pure: they
// take characters and return new ones, never touching the input.

// RotateDirection selects the quarter-turn direction.
type RotateDirection string

const (
	RotateLeft  RotateDirection = "left"
	RotateRight RotateDirection = "right"
)

// ShiftDirection selects the translation direction for ShiftCharacter.
type ShiftDirection string

const (
	ShiftUp    ShiftDirection = "up"
	ShiftDown  ShiftDirection = "down"
	ShiftLeft  ShiftDirection = "left"
	ShiftRight ShiftDirection = "right"
)

// Anchor is one of nine positions on a 3x3 grid, selecting how
// content aligns when the frame around it changes size.
type Anchor string

const (
	AnchorTopLeft      Anchor = "tl"
	AnchorTopCenter    Anchor = "tc"
	AnchorTopRight     Anchor = "tr"
	AnchorMiddleLeft   Anchor = "ml"
	AnchorMiddleCenter Anchor = "mc"
	AnchorMiddleRight  Anchor = "mr"
	AnchorBottomLeft   Anchor = "bl"
	AnchorBottomCenter Anchor = "bc"
	AnchorBottomRight  Anchor = "br"
)

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which is wrong for the centering
// offsets when the content shrinks by an odd amount.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// anchorOffsets returns the (col, row) offset that places content of
// size contentW x contentH inside a frame of size frameW x frameH
// according to the anchor. Left/top anchored content sits at 0,
// centered content at floor((frame-content)/2), right/bottom at
// frame-content.
func anchorOffsets(anchor Anchor, frameW, frameH, contentW, contentH int) (int, int) {
	var offX, offY int
	switch anchor {
	case AnchorTopCenter, AnchorMiddleCenter, AnchorBottomCenter:
		offX = floorDiv(frameW-contentW, 2)
	case AnchorTopRight, AnchorMiddleRight, AnchorBottomRight:
		offX = frameW - contentW
	}
	switch anchor {
	case AnchorMiddleLeft, AnchorMiddleCenter, AnchorMiddleRight:
		offY = floorDiv(frameH-contentH, 2)
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		offY = frameH - contentH
	}
	return offX, offY
}

// RotateCharacter rotates a character a quarter turn. The output
// keeps the original width x height even for non-square characters:
// pixels whose rotated position falls outside the original frame are
// dropped, and positions with no rotated source stay background. This
// clipping policy is deliberate; it is not a transposed-dimension
// rotation.
func RotateCharacter(c Character, dir RotateDirection) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			var srcRow, srcCol int
			if dir == RotateRight {
				srcRow, srcCol = h-1-col, row
			} else {
				srcRow, srcCol = col, w-1-row
			}
			if srcRow >= 0 && srcRow < h && srcCol >= 0 && srcCol < w {
				out.Pixels[row][col] = c.Pixels[srcRow][srcCol]
			}
		}
	}
	return out
}

// ShiftCharacter translates all pixels by one cell. With wrap, pixels
// leaving one edge reappear on the opposite edge; without, vacated
// cells become background and pixels shifted past the edge are
// discarded.
func ShiftCharacter(c Character, dir ShiftDirection, wrap bool) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(w, h)
	var dRow, dCol int
	switch dir {
	case ShiftUp:
		dRow = -1
	case ShiftDown:
		dRow = 1
	case ShiftLeft:
		dCol = -1
	case ShiftRight:
		dCol = 1
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			srcRow, srcCol := row-dRow, col-dCol
			if wrap {
				srcRow = ((srcRow % h) + h) % h
				srcCol = ((srcCol % w) + w) % w
			} else if srcRow < 0 || srcRow >= h || srcCol < 0 || srcCol >= w {
				continue
			}
			out.Pixels[row][col] = c.Pixels[srcRow][srcCol]
		}
	}
	return out
}

// ResizeCharacter changes a character's dimensions, aligning the old
// content inside the new frame per the anchor. Works identically for
// growing and shrinking; cells with no source become background.
func ResizeCharacter(c Character, newWidth, newHeight int, anchor Anchor) Character {
	offX, offY := anchorOffsets(anchor, newWidth, newHeight, c.Width(), c.Height())
	return copyAtOffset(c, newWidth, newHeight, offX, offY)
}

// copyAtOffset places src into a fresh width x height frame with its
// top-left corner at (offX, offY), clipping whatever falls outside.
func copyAtOffset(src Character, width, height, offX, offY int) Character {
	out := NewCharacter(width, height)
	for row := 0; row < src.Height(); row++ {
		for col := 0; col < src.Width(); col++ {
			dstRow, dstCol := row+offY, col+offX
			if dstRow < 0 || dstRow >= height || dstCol < 0 || dstCol >= width {
				continue
			}
			out.Pixels[dstRow][dstCol] = src.Pixels[row][col]
		}
	}
	return out
}

// FlipHorizontal mirrors a character along its vertical axis.
func FlipHorizontal(c Character) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out.Pixels[row][col] = c.Pixels[row][w-1-col]
		}
	}
	return out
}

// FlipVertical mirrors a character along its horizontal axis.
func FlipVertical(c Character) Character {
	w, h := c.Width(), c.Height()
	out := NewCharacter(w, h)
	for row := 0; row < h; row++ {
		copy(out.Pixels[row], c.Pixels[h-1-row])
	}
	return out
}

// InvertCharacter flips every pixel between foreground and
// background.
func InvertCharacter(c Character) Character {
	out := NewCharacter(c.Width(), c.Height())
	for row, line := range c.Pixels {
		for col, p := range line {
			out.Pixels[row][col] = !p
		}
	}
	return out
}

// ClearCharacter constructs a new all-background character.
func ClearCharacter(width, height int) Character {
	return NewCharacter(width, height)
}

// FillCharacter constructs a new all-foreground character.
func FillCharacter(width, height int) Character {
	out := NewCharacter(width, height)
	for _, row := range out.Pixels {
		for col := range row {
			row[col] = true
		}
	}
	return out
}

// GetBoundingBox scans all pixels and returns the tight box around
// the foreground, or nil when the character is entirely background.
func GetBoundingBox(c Character) *BoundingBox {
	box := BoundingBox{
		MinRow: c.Height(), MaxRow: -1,
		MinCol: c.Width(), MaxCol: -1,
	}
	for row, line := range c.Pixels {
		for col, p := range line {
			if !p {
				continue
			}
			if row < box.MinRow {
				box.MinRow = row
			}
			if row > box.MaxRow {
				box.MaxRow = row
			}
			if col < box.MinCol {
				box.MinCol = col
			}
			if col > box.MaxCol {
				box.MaxCol = col
			}
		}
	}
	if box.MaxRow < 0 {
		return nil
	}
	return &box
}

// CenterCharacter shifts a character's content so its bounding box is
// centered in the original dimensions. Empty and already-centered
// characters come back unchanged in content.
func CenterCharacter(c Character) Character {
	box := GetBoundingBox(c)
	if box == nil {
		return c.Clone()
	}
	contentW := box.MaxCol - box.MinCol + 1
	contentH := box.MaxRow - box.MinRow + 1
	offX := floorDiv(c.Width()-contentW, 2) - box.MinCol
	offY := floorDiv(c.Height()-contentH, 2) - box.MinRow
	return copyAtOffset(c, c.Width(), c.Height(), offX, offY)
}
