// Package charrom edits bitmap character-ROM fonts: fixed-size glyph
// bitmaps packed into raw byte streams the way retro computer and LED
// character generator chips store them. It covers the binary codec
// (pixels <-> bytes under configurable bit direction and padding),
// pixel-space geometric transforms, text/code paste import, export to
// C headers, assembly, PNG and PDF, and cross-set similarity scoring.
package charrom

import (
	"fmt"
	"time"
)

// Character is one glyph's pixel bitmap: a rectangular grid of
// booleans, true = foreground/lit. Rows all have identical length;
// the grid is never jagged. Transforms never mutate a Character in
// place, they return fresh grids.
type Character struct {
	Pixels [][]bool
}

// NewCharacter creates an all-background character of the given size.
func NewCharacter(width, height int) Character {
	pixels := make([][]bool, height)
	for y := range pixels {
		pixels[y] = make([]bool, width)
	}
	return Character{Pixels: pixels}
}

// Width returns the number of columns in the character.
func (c Character) Width() int {
	if len(c.Pixels) == 0 {
		return 0
	}
	return len(c.Pixels[0])
}

// Height returns the number of rows in the character.
func (c Character) Height() int {
	return len(c.Pixels)
}

// At returns the pixel at (row, col). Out-of-range coordinates read
// as background rather than panicking, matching the tolerant access
// used throughout the codec.
func (c Character) At(row, col int) bool {
	if row < 0 || row >= c.Height() || col < 0 || col >= c.Width() {
		return false
	}
	return c.Pixels[row][col]
}

// Clone returns a deep copy of the character.
func (c Character) Clone() Character {
	out := NewCharacter(c.Width(), c.Height())
	for y, row := range c.Pixels {
		copy(out.Pixels[y], row)
	}
	return out
}

// Equal reports whether two characters have identical dimensions and
// pixel content.
func (c Character) Equal(other Character) bool {
	if c.Width() != other.Width() || c.Height() != other.Height() {
		return false
	}
	for y, row := range c.Pixels {
		for x, p := range row {
			if p != other.Pixels[y][x] {
				return false
			}
		}
	}
	return true
}

// Padding selects where the unused bits of a row's last byte go when
// the character width is not a multiple of 8.
type Padding string

const (
	// PaddingRight left-justifies pixel data; unused low-order bits
	// trail it.
	PaddingRight Padding = "right"
	// PaddingLeft right-justifies pixel data; unused high-order bits
	// precede it.
	PaddingLeft Padding = "left"
)

// BitDirection selects which bit of a byte column 0 maps to.
type BitDirection string

const (
	// BitLTR maps column 0 to the most-significant bit.
	BitLTR BitDirection = "ltr"
	// BitRTL maps column 0 to the least-significant bit.
	BitRTL BitDirection = "rtl"
	// BitMSB is an accepted alias for BitLTR used by text import.
	BitMSB BitDirection = "msb"
	// BitLSB is an accepted alias for BitRTL used by text import.
	BitLSB BitDirection = "lsb"
)

// ByteOrder is carried on configs for completeness. Rows are emitted
// in column order regardless, so it does not alter packing; it is
// validated and round-tripped as metadata only.
type ByteOrder string

const (
	ByteOrderBig    ByteOrder = "big"
	ByteOrderLittle ByteOrder = "little"
)

// CharacterSetConfig governs exactly how a character's pixel grid
// maps to bytes. Width and height must be at least 1; there is no
// upper bound at the codec level.
type CharacterSetConfig struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Padding      Padding      `json:"padding"`
	BitDirection BitDirection `json:"bitDirection"`
	ByteOrder    ByteOrder    `json:"byteOrder,omitempty"`
}

// Validate checks the config for use with the codec.
func (cfg CharacterSetConfig) Validate() error {
	if cfg.Width < 1 {
		return fmt.Errorf("invalid character width %d: must be at least 1", cfg.Width)
	}
	if cfg.Height < 1 {
		return fmt.Errorf("invalid character height %d: must be at least 1", cfg.Height)
	}
	switch cfg.Padding {
	case PaddingLeft, PaddingRight:
	default:
		return fmt.Errorf("invalid padding %q: must be %q or %q", cfg.Padding, PaddingLeft, PaddingRight)
	}
	switch cfg.BitDirection {
	case BitLTR, BitRTL, BitMSB, BitLSB:
	default:
		return fmt.Errorf("invalid bit direction %q: must be one of %q, %q, %q, %q",
			cfg.BitDirection, BitLTR, BitRTL, BitMSB, BitLSB)
	}
	switch cfg.ByteOrder {
	case "", ByteOrderBig, ByteOrderLittle:
	default:
		return fmt.Errorf("invalid byte order %q: must be %q or %q", cfg.ByteOrder, ByteOrderBig, ByteOrderLittle)
	}
	return nil
}

// msbFirst reports whether column 0 maps to the most-significant bit,
// folding the msb/lsb aliases onto ltr/rtl.
func (cfg CharacterSetConfig) msbFirst() bool {
	return cfg.BitDirection == BitLTR || cfg.BitDirection == BitMSB
}

// BytesPerRow returns the packed byte count of one pixel row.
func (cfg CharacterSetConfig) BytesPerRow() int {
	return (cfg.Width + 7) / 8
}

// BytesPerCharacter returns the packed byte count of one character.
func (cfg CharacterSetConfig) BytesPerCharacter() int {
	return cfg.BytesPerRow() * cfg.Height
}

// Metadata describes a stored character set.
type Metadata struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Source         string    `json:"source"`
	Manufacturer   string    `json:"manufacturer,omitempty"`
	System         string    `json:"system,omitempty"`
	Chip           string    `json:"chip,omitempty"`
	Locale         string    `json:"locale,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	IsPinned       bool      `json:"isPinned"`
	IsBuiltIn      bool      `json:"isBuiltIn"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	BuiltInVersion int       `json:"builtInVersion,omitempty"`
}

// CharacterSet is an ordered sequence of characters; the index is the
// character's code point / ROM offset, so order is significant and
// round-trips must preserve it.
type CharacterSet struct {
	Metadata   Metadata
	Config     CharacterSetConfig
	Characters []Character
}

// SerializedCharacterSet is the persisted form of a CharacterSet: the
// characters are replaced by their packed ROM image, base64 encoded.
type SerializedCharacterSet struct {
	Metadata   Metadata           `json:"metadata"`
	Config     CharacterSetConfig `json:"config"`
	BinaryData string             `json:"binaryData"`
}

// BoundingBox is the tight box around a character's foreground
// pixels. A character with no foreground pixels has no bounding box
// (nil from GetBoundingBox).
type BoundingBox struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}
