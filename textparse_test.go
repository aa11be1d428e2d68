package charrom

import (
	"reflect"
	"testing"
)

func TestParseHexLiterals(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("0x00, 0x7E, 0x42, 0x42, 0x7E, 0x00, 0x00, 0x00")
	want := ParseResult{
		Bytes:  []byte{0, 126, 66, 66, 126, 0, 0, 0},
		Format: FormatHex,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseUppercaseHexPrefixNotRecognized(t *testing.T) {
	t.Parallel()

	// 0X is not a recognized prefix; this input has no tokens at
	// all. Pinned behavior: imported data depends on it.
	got := ParseTextToBytes("0X00, 0XFF")
	if len(got.Bytes) != 0 {
		t.Errorf("expected no bytes, got %v", got.Bytes)
	}
	if got.Err != "No valid byte values found in input" {
		t.Errorf("unexpected error %q", got.Err)
	}
}

func TestParseUppercaseBinaryPrefixNotRecognized(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("0B1010")
	if len(got.Bytes) != 0 {
		t.Errorf("expected no bytes, got %v", got.Bytes)
	}
}

func TestParseOutOfRangeDecimal(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("0, 100, 256, 300, 255")
	if !reflect.DeepEqual(got.Bytes, []byte{0, 100, 255}) {
		t.Errorf("expected [0 100 255], got %v", got.Bytes)
	}
	if got.InvalidCount != 2 {
		t.Errorf("expected 2 invalid values, got %d", got.InvalidCount)
	}
	if got.Format != FormatDecimal {
		t.Errorf("expected decimal format, got %s", got.Format)
	}
	if got.Err != "" {
		t.Errorf("unexpected error %q", got.Err)
	}
}

func TestParseDollarHex(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("lda #$FF\n.byte $00, $a5")
	if !reflect.DeepEqual(got.Bytes, []byte{0xFF, 0x00, 0xA5}) {
		t.Errorf("expected [255 0 165], got %v", got.Bytes)
	}
	if got.Format != FormatHex {
		t.Errorf("$-hex counts as hex style, got %s", got.Format)
	}
}

func TestParseBinary(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("0b00000000 0b01111110 0b1")
	if !reflect.DeepEqual(got.Bytes, []byte{0, 126, 1}) {
		t.Errorf("expected [0 126 1], got %v", got.Bytes)
	}
	if got.Format != FormatBinary {
		t.Errorf("expected binary format, got %s", got.Format)
	}
}

func TestParseMixedFormats(t *testing.T) {
	t.Parallel()

	got := ParseTextToBytes("const rom = [0x7E, 126, 0b01111110];")
	if !reflect.DeepEqual(got.Bytes, []byte{126, 126, 126}) {
		t.Errorf("expected three 126s, got %v", got.Bytes)
	}
	if got.Format != FormatMixed {
		t.Errorf("expected mixed format, got %s", got.Format)
	}
}

func TestParseNegativeNumberQuirk(t *testing.T) {
	t.Parallel()

	// The minus sign is not part of the decimal token: -5 parses as
	// 5. Documented quirk, not a rejection.
	got := ParseTextToBytes("-5")
	if !reflect.DeepEqual(got.Bytes, []byte{5}) {
		t.Errorf("expected [5], got %v", got.Bytes)
	}
	if got.InvalidCount != 0 {
		t.Errorf("expected no invalid values, got %d", got.InvalidCount)
	}
}

func TestParseErrorsInOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		err   string
	}{
		{"empty", "", "No input provided"},
		{"whitespace", "  \n\t ", "No input provided"},
		{"no tokens", "hello world // a comment", "No valid byte values found in input"},
		{"all out of range", "256 999 300", "No valid byte values found (all values were out of range 0-255)"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseTextToBytes(tc.input)
			if got.Err != tc.err {
				t.Errorf("expected error %q, got %q", tc.err, got.Err)
			}
			if got.Format != FormatHex {
				t.Errorf("errors default to hex format, got %s", got.Format)
			}
			if len(got.Bytes) != 0 {
				t.Errorf("expected no bytes, got %v", got.Bytes)
			}
		})
	}
}

func TestParseIgnoresCodeNoise(t *testing.T) {
	t.Parallel()

	input := `
		// glyph 'A'
		static const unsigned char rom[] = {
			0x18, 0x24, 0x42, 0x7e, 0x42, 0x42, 0x42, 0x00,
		};
	`
	got := ParseTextToBytes(input)
	if !reflect.DeepEqual(got.Bytes, []byte{0x18, 0x24, 0x42, 0x7E, 0x42, 0x42, 0x42, 0x00}) {
		t.Errorf("unexpected bytes %v", got.Bytes)
	}
	if got.Format != FormatHex {
		t.Errorf("expected hex format, got %s", got.Format)
	}
}

func TestParseTextToCharacters(t *testing.T) {
	t.Parallel()

	cfg := testConfig(8, 8, PaddingRight, BitLTR)

	// 8 bytes per character; 20 bytes gives two whole characters,
	// with the trailing partial silently ignored.
	input := "0xFF 0xFF 0xFF 0xFF 0xFF 0xFF 0xFF 0xFF " +
		"0x00 0x00 0x00 0x00 0x00 0x00 0x00 0x00 " +
		"0xAA 0xBB 0xCC 0xDD"
	chars, result := ParseTextToCharacters(input, cfg)
	if result.Err != "" {
		t.Fatalf("unexpected parse error %q", result.Err)
	}
	if len(chars) != 2 {
		t.Fatalf("expected 2 whole characters, got %d", len(chars))
	}
	if !chars[0].Equal(FillCharacter(8, 8)) {
		t.Error("first character should be fully lit")
	}
	if !chars[1].Equal(NewCharacter(8, 8)) {
		t.Error("second character should be empty")
	}

	// Errors pass through with no characters.
	chars, result = ParseTextToCharacters("", cfg)
	if chars != nil || result.Err == "" {
		t.Error("expected error passthrough for empty input")
	}
}
