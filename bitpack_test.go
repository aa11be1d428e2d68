package charrom

import (
	"bytes"
	"math/rand"
	"testing"
)

func testConfig(w, h int, padding Padding, dir BitDirection) CharacterSetConfig {
	return CharacterSetConfig{Width: w, Height: h, Padding: padding, BitDirection: dir}
}

// randomCharacter builds a deterministic pseudo-random character for
// round-trip tests.
func randomCharacter(w, h int, seed int64) Character {
	rng := rand.New(rand.NewSource(seed))
	c := NewCharacter(w, h)
	for y := range c.Pixels {
		for x := range c.Pixels[y] {
			c.Pixels[y][x] = rng.Intn(2) == 1
		}
	}
	return c
}

func TestBytesPerRow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width int
		want  int
	}{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {12, 2}, {16, 2}, {17, 3},
	}
	for _, tc := range cases {
		cfg := testConfig(tc.width, 8, PaddingRight, BitLTR)
		if got := cfg.BytesPerRow(); got != tc.want {
			t.Errorf("width %d: expected %d bytes per row, got %d", tc.width, tc.want, got)
		}
	}
}

func TestCharacterToBytesKnownValues(t *testing.T) {
	t.Parallel()

	// Single lit pixel at column 0 of an 8x1 row.
	c := NewCharacter(8, 1)
	c.Pixels[0][0] = true

	if got := CharacterToBytes(c, testConfig(8, 1, PaddingRight, BitLTR)); got[0] != 0x80 {
		t.Errorf("ltr: expected column 0 in the MSB (0x80), got 0x%02X", got[0])
	}
	if got := CharacterToBytes(c, testConfig(8, 1, PaddingRight, BitRTL)); got[0] != 0x01 {
		t.Errorf("rtl: expected column 0 in the LSB (0x01), got 0x%02X", got[0])
	}
}

func TestCharacterToBytesPadding(t *testing.T) {
	t.Parallel()

	// A 5-wide row, all lit. With right padding the data is
	// left-justified (11111000); with left padding it is
	// right-justified (00011111).
	c := FillCharacter(5, 1)

	if got := CharacterToBytes(c, testConfig(5, 1, PaddingRight, BitLTR)); got[0] != 0xF8 {
		t.Errorf("right padding: expected 0xF8, got 0x%02X", got[0])
	}
	if got := CharacterToBytes(c, testConfig(5, 1, PaddingLeft, BitLTR)); got[0] != 0x1F {
		t.Errorf("left padding: expected 0x1F, got 0x%02X", got[0])
	}
}

func TestBitPackRoundTrip(t *testing.T) {
	t.Parallel()

	widths := []int{1, 3, 5, 7, 8, 9, 12, 16}
	heights := []int{1, 2, 7, 8, 16}
	paddings := []Padding{PaddingLeft, PaddingRight}
	directions := []BitDirection{BitLTR, BitRTL, BitMSB, BitLSB}

	seed := int64(1)
	for _, w := range widths {
		for _, h := range heights {
			for _, p := range paddings {
				for _, d := range directions {
					cfg := testConfig(w, h, p, d)
					c := randomCharacter(w, h, seed)
					seed++

					encoded := CharacterToBytes(c, cfg)
					if len(encoded) != cfg.BytesPerCharacter() {
						t.Fatalf("%dx%d %s/%s: expected %d bytes, got %d",
							w, h, p, d, cfg.BytesPerCharacter(), len(encoded))
					}
					decoded := BytesToCharacter(encoded, 0, cfg)
					if !decoded.Equal(c) {
						t.Errorf("%dx%d %s/%s: round trip mismatch", w, h, p, d)
					}
				}
			}
		}
	}
}

func TestBytesToCharacterTruncated(t *testing.T) {
	t.Parallel()

	cfg := testConfig(8, 8, PaddingRight, BitLTR)
	// Only two of the eight row bytes present: rows 0-1 decode, the
	// rest read as background instead of failing.
	decoded := BytesToCharacter([]byte{0xFF, 0xFF}, 0, cfg)
	for x := 0; x < 8; x++ {
		if !decoded.Pixels[0][x] || !decoded.Pixels[1][x] {
			t.Fatalf("expected rows 0-1 fully lit, pixel column %d off", x)
		}
	}
	for y := 2; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if decoded.Pixels[y][x] {
				t.Fatalf("expected row %d to decode as background", y)
			}
		}
	}

	// Offset entirely past the buffer: an all-background character.
	empty := BytesToCharacter([]byte{0xFF}, 100, cfg)
	if !empty.Equal(NewCharacter(8, 8)) {
		t.Error("expected out-of-range offset to decode as empty character")
	}
}

func TestBytesToCharacterOffset(t *testing.T) {
	t.Parallel()

	cfg := testConfig(8, 2, PaddingRight, BitLTR)
	a := randomCharacter(8, 2, 42)
	b := randomCharacter(8, 2, 43)
	buf := append(CharacterToBytes(a, cfg), CharacterToBytes(b, cfg)...)

	if !BytesToCharacter(buf, 0, cfg).Equal(a) {
		t.Error("offset 0 should decode the first character")
	}
	if !BytesToCharacter(buf, cfg.BytesPerCharacter(), cfg).Equal(b) {
		t.Error("offset bytesPerCharacter should decode the second character")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	good := testConfig(8, 8, PaddingRight, BitLTR)
	if err := good.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := []CharacterSetConfig{
		testConfig(0, 8, PaddingRight, BitLTR),
		testConfig(8, 0, PaddingRight, BitLTR),
		testConfig(8, 8, "middle", BitLTR),
		testConfig(8, 8, PaddingRight, "boustrophedon"),
		{Width: 8, Height: 8, Padding: PaddingRight, BitDirection: BitLTR, ByteOrder: "native"},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, cfg)
		}
	}
}

func TestSerializeROMConcatenation(t *testing.T) {
	t.Parallel()

	cfg := testConfig(8, 8, PaddingRight, BitLTR)
	chars := []Character{
		randomCharacter(8, 8, 7),
		randomCharacter(8, 8, 8),
		randomCharacter(8, 8, 9),
	}
	rom := SerializeCharacterROM(chars, cfg)

	var expected []byte
	for _, c := range chars {
		expected = append(expected, CharacterToBytes(c, cfg)...)
	}
	if !bytes.Equal(rom, expected) {
		t.Error("ROM image should be the concatenation of per-character bytes in order")
	}
}
