package charrom

import (
	"regexp"
	"strconv"
	"strings"
)

// Text/code paste import: scans free-form text (C arrays, assembly
// directives, Python lists, comments and all) for byte literals and
// extracts them in textual order, with no format markers required.

// ByteFormat identifies which literal style(s) a parse found.
type ByteFormat string

const (
	FormatHex     ByteFormat = "hex"
	FormatDecimal ByteFormat = "decimal"
	FormatBinary  ByteFormat = "binary"
	FormatMixed   ByteFormat = "mixed"
)

// ParseResult is the outcome of one text parse. Err carries a
// descriptive message instead of an error value so callers can render
// inline feedback without exception handling; it is empty on success.
type ParseResult struct {
	Bytes        []byte
	Format       ByteFormat
	InvalidCount int
	Err          string
}

// Parse errors, in the order they are checked.
const (
	errNoInput    = "No input provided"
	errNoValues   = "No valid byte values found in input"
	errOutOfRange = "No valid byte values found (all values were out of range 0-255)"
)

// byteLiteral matches the four recognized literal styles. The 0x and
// 0b prefixes are lowercase only: "0X00" and "0B11" are not
// recognized, and a leading minus sign is not part of the decimal
// token, so "-5" parses as decimal 5. Both quirks are long-standing
// observable behavior that imported data relies on, so they stay.
var byteLiteral = regexp.MustCompile(
	`(0x[0-9a-fA-F]{1,2})|(\$[0-9a-fA-F]{1,2})|(0b[01]{1,8})|\b([0-9]{1,3})\b`)

// ParseTextToBytes scans text for byte literals in hex (0x.. or $..),
// binary (0b..) and bare decimal (1-3 digit runs on word boundaries)
// form, all in a single pass, so mixed-format input parses fine.
// Decimal matches outside 0-255 are dropped and counted in
// InvalidCount; hex and binary matches are in range by construction.
func ParseTextToBytes(text string) ParseResult {
	if strings.TrimSpace(text) == "" {
		return ParseResult{Format: FormatHex, Err: errNoInput}
	}

	matches := byteLiteral.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ParseResult{Format: FormatHex, Err: errNoValues}
	}

	var bytes []byte
	var invalid int
	sawHex, sawDecimal, sawBinary := false, false, false
	for _, m := range matches {
		switch {
		case m[1] != "":
			v, _ := strconv.ParseUint(m[1][2:], 16, 16)
			bytes = append(bytes, byte(v))
			sawHex = true
		case m[2] != "":
			v, _ := strconv.ParseUint(m[2][1:], 16, 16)
			bytes = append(bytes, byte(v))
			sawHex = true
		case m[3] != "":
			v, _ := strconv.ParseUint(m[3][2:], 2, 16)
			bytes = append(bytes, byte(v))
			sawBinary = true
		default:
			v, _ := strconv.ParseUint(m[4], 10, 16)
			if v > 255 {
				invalid++
				continue
			}
			bytes = append(bytes, byte(v))
			sawDecimal = true
		}
	}

	if len(bytes) == 0 {
		return ParseResult{Format: FormatHex, InvalidCount: invalid, Err: errOutOfRange}
	}

	format := FormatHex
	styles := 0
	for _, saw := range []bool{sawHex, sawDecimal, sawBinary} {
		if saw {
			styles++
		}
	}
	switch {
	case styles > 1:
		format = FormatMixed
	case sawDecimal:
		format = FormatDecimal
	case sawBinary:
		format = FormatBinary
	}

	return ParseResult{Bytes: bytes, Format: format, InvalidCount: invalid}
}

// ParseTextToCharacters parses text into bytes and decodes them into
// as many whole characters as the byte count supports; a trailing
// partial character's bytes are silently ignored. The ParseResult is
// returned alongside so callers can surface format and invalid-value
// feedback.
func ParseTextToCharacters(text string, cfg CharacterSetConfig) ([]Character, ParseResult) {
	result := ParseTextToBytes(text)
	if result.Err != "" {
		return nil, result
	}
	perChar := cfg.BytesPerCharacter()
	count := len(result.Bytes) / perChar
	characters := make([]Character, 0, count)
	for i := 0; i < count; i++ {
		characters = append(characters, BytesToCharacter(result.Bytes, i*perChar, cfg))
	}
	return characters, result
}
