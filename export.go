package charrom

import (
	"fmt"
	"strings"
)

// Textual export formats. Every function here is a pure rendering of
// (characters, config, options) so previews and downloads of the same
// set are always byte-identical.

// AsmDirective selects the byte-directive dialect for assembly
// export.
type AsmDirective string

const (
	DirectiveByte  AsmDirective = ".byte"
	DirectiveDB    AsmDirective = "db"
	DirectiveDotDB AsmDirective = ".db"
	DirectiveDCB   AsmDirective = "DC.B"
)

// ExportOptions controls the textual exports. The zero value renders
// with the name "charset", the ".byte" directive, decimal literals
// and no per-character comments.
type ExportOptions struct {
	// Name is the C symbol or assembly label to emit.
	Name string
	// Directive is the assembly byte directive dialect.
	Directive AsmDirective
	// HexLiterals renders assembly bytes as $NN instead of decimal.
	HexLiterals bool
	// Comments adds a per-character index comment.
	Comments bool
}

func (o ExportOptions) name() string {
	if o.Name == "" {
		return "charset"
	}
	return o.Name
}

func (o ExportOptions) directive() AsmDirective {
	if o.Directive == "" {
		return DirectiveByte
	}
	return o.Directive
}

// sanitizeIdentifier maps a free-form name onto a C identifier.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "charset"
	}
	return b.String()
}

// ExportCHeader renders the ROM image as a C header: include guards
// around a static const unsigned char array, one character per line.
func ExportCHeader(characters []Character, cfg CharacterSetConfig, opts ExportOptions) string {
	name := sanitizeIdentifier(opts.name())
	guard := strings.ToUpper(name) + "_H"
	perChar := cfg.BytesPerCharacter()

	var b strings.Builder
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(&b, "/* %d characters, %dx%d pixels, %d bytes each */\n",
		len(characters), cfg.Width, cfg.Height, perChar)
	fmt.Fprintf(&b, "static const unsigned char %s[] = {\n", name)
	for i, c := range characters {
		b.WriteString("    ")
		for j, v := range CharacterToBytes(c, cfg) {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", v)
		}
		if i < len(characters)-1 {
			b.WriteByte(',')
		}
		if opts.Comments {
			fmt.Fprintf(&b, " /* char %d */", i)
		}
		b.WriteByte('\n')
	}
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", guard)
	return b.String()
}

// ExportAssembly renders the ROM image as assembly byte directives in
// the selected dialect, one character per line.
func ExportAssembly(characters []Character, cfg CharacterSetConfig, opts ExportOptions) string {
	directive := string(opts.directive())

	var b strings.Builder
	fmt.Fprintf(&b, "; %s: %d characters, %dx%d pixels\n", opts.name(), len(characters), cfg.Width, cfg.Height)
	fmt.Fprintf(&b, "%s:\n", sanitizeIdentifier(opts.name()))
	for i, c := range characters {
		if opts.Comments {
			fmt.Fprintf(&b, "; char %d\n", i)
		}
		fmt.Fprintf(&b, "    %s ", directive)
		for j, v := range CharacterToBytes(c, cfg) {
			if j > 0 {
				b.WriteString(", ")
			}
			if opts.HexLiterals {
				fmt.Fprintf(&b, "$%02X", v)
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// HexPreview renders the ROM image as an offset-labeled hex dump, one
// character per line.
func HexPreview(characters []Character, cfg CharacterSetConfig) string {
	perChar := cfg.BytesPerCharacter()
	var b strings.Builder
	for i, c := range characters {
		fmt.Fprintf(&b, "%04X:", i*perChar)
		for _, v := range CharacterToBytes(c, cfg) {
			fmt.Fprintf(&b, " %02X", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BitLayout renders how one pixel row's columns land in its bytes
// under the config: each byte's bits from most to least significant,
// labeled with the column they hold or "pad" for unused padding bits.
func BitLayout(cfg CharacterSetConfig) string {
	bytesPerRow := cfg.BytesPerRow()

	// Invert the packing map: slot[byte][bit 7..0] -> column.
	slots := make([][8]int, bytesPerRow)
	for i := range slots {
		for b := range slots[i] {
			slots[i][b] = -1
		}
	}
	for col := 0; col < cfg.Width; col++ {
		byteIdx, mask := rowBitSlot(col, cfg)
		for bit := 0; bit < 8; bit++ {
			if mask == 1<<(7-bit) {
				slots[byteIdx][bit] = col
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "row layout: width %d, padding %s, bit direction %s\n",
		cfg.Width, cfg.Padding, cfg.BitDirection)
	for i, slot := range slots {
		fmt.Fprintf(&b, "byte %d:", i)
		for bit := 0; bit < 8; bit++ {
			if slot[bit] < 0 {
				fmt.Fprintf(&b, " [pad]")
			} else {
				fmt.Fprintf(&b, " [c%02d]", slot[bit])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
