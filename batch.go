package charrom

// Batch editing across a selected subset of a character set. These
// back the tri-state multi-select editor: one transform or pixel
// toggle applied to every selected character at once.

// PixelState is the aggregate state of one coordinate across a
// selection of characters.
type PixelState string

const (
	// PixelSameOn means every selected character has the pixel lit.
	PixelSameOn PixelState = "same-on"
	// PixelSameOff means every selected character has the pixel off.
	PixelSameOff PixelState = "same-off"
	// PixelMixed means at least two selected characters disagree.
	PixelMixed PixelState = "mixed"
)

// GetPixelState reports the aggregate state of (row, col) across the
// characters at the selected indices. Indices outside the slice are
// ignored; an empty effective selection reads as same-off.
func GetPixelState(characters []Character, selected []int, row, col int) PixelState {
	seenOn, seenOff := false, false
	for _, idx := range selected {
		if idx < 0 || idx >= len(characters) {
			continue
		}
		if characters[idx].At(row, col) {
			seenOn = true
		} else {
			seenOff = true
		}
	}
	switch {
	case seenOn && seenOff:
		return PixelMixed
	case seenOn:
		return PixelSameOn
	default:
		return PixelSameOff
	}
}

// BatchTogglePixel toggles (row, col) across the selection: a
// uniformly lit pixel turns off everywhere, while a mixed or off
// pixel turns on everywhere. Returns a new slice; unselected
// characters are carried over untouched and selected ones are
// replaced with fresh copies.
func BatchTogglePixel(characters []Character, selected []int, row, col int) []Character {
	target := GetPixelState(characters, selected, row, col) != PixelSameOn
	out := make([]Character, len(characters))
	copy(out, characters)
	for _, idx := range selected {
		if idx < 0 || idx >= len(out) {
			continue
		}
		if row < 0 || row >= out[idx].Height() || col < 0 || col >= out[idx].Width() {
			continue
		}
		next := out[idx].Clone()
		next.Pixels[row][col] = target
		out[idx] = next
	}
	return out
}

// BatchTransform applies a pure transform to every selected
// character, returning a new slice with unselected characters carried
// over untouched.
func BatchTransform(characters []Character, selected []int, transform func(Character) Character) []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	for _, idx := range selected {
		if idx < 0 || idx >= len(out) {
			continue
		}
		out[idx] = transform(out[idx])
	}
	return out
}
