// Command charomtool inspects and converts character ROM dumps.
//
// It reads a raw ROM file (or byte literals pasted on stdin) and
// renders it as a C header, assembly, hex dump, bit-layout diagram,
// PNG sheet, PDF sheet, raw binary, or share blob.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RetroStack/charrom"
)

func main() {
	input := flag.String("input", "",
		"Path to a ROM file (.bin .rom .chr .fnt .dat), or - to parse byte literals from stdin")
	output := flag.String("output", "",
		"Path to save the output (if not specified, text formats print to stdout)")
	format := flag.String("format", "hex",
		"Output format: cheader, asm, hex, layout, png, pdf, bin, share")
	width := flag.Int("width", 8, "Character width in pixels")
	height := flag.Int("height", 8, "Character height in pixels")
	padding := flag.String("padding", "right",
		"Bit padding when width is not a multiple of 8: left or right")
	bitdir := flag.String("bitdir", "ltr",
		"Bit direction: ltr (column 0 in the MSB) or rtl")
	name := flag.String("name", "charset", "Symbol or label name for code exports")
	directive := flag.String("directive", ".byte",
		"Assembly byte directive: .byte, db, .db or DC.B")
	hexLiterals := flag.Bool("hex-literals", false, "Render assembly bytes as $NN")
	comments := flag.Bool("comments", false, "Add per-character comments to code exports")
	columns := flag.Int("columns", 16, "Characters per row for png/pdf sheets")
	scale := flag.Int("scale", 4, "Pixel scale for PNG sheets")
	flag.Parse()

	cfg := charrom.CharacterSetConfig{
		Width:        *width,
		Height:       *height,
		Padding:      charrom.Padding(*padding),
		BitDirection: charrom.BitDirection(*bitdir),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	characters, err := loadCharacters(*input, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := charrom.ExportOptions{
		Name:        *name,
		Directive:   charrom.AsmDirective(*directive),
		HexLiterals: *hexLiterals,
		Comments:    *comments,
	}
	if err := writeOutput(*format, *output, characters, cfg, opts, *columns, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCharacters reads the ROM from a file or parses pasted byte
// literals from stdin.
func loadCharacters(input string, cfg charrom.CharacterSetConfig) ([]charrom.Character, error) {
	switch input {
	case "":
		return nil, fmt.Errorf("no input specified (use -input FILE or -input -)")
	case "-":
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		characters, result := charrom.ParseTextToCharacters(string(text), cfg)
		if result.Err != "" {
			return nil, fmt.Errorf("%s", result.Err)
		}
		fmt.Fprintf(os.Stderr, "Parsed %d bytes (%s format", len(result.Bytes), result.Format)
		if result.InvalidCount > 0 {
			fmt.Fprintf(os.Stderr, ", %d out-of-range values skipped", result.InvalidCount)
		}
		fmt.Fprintf(os.Stderr, "), %d whole characters\n", len(characters))
		return characters, nil
	default:
		return charrom.LoadROMFile(input, cfg)
	}
}

func writeOutput(format, output string, characters []charrom.Character, cfg charrom.CharacterSetConfig,
	opts charrom.ExportOptions, columns, scale int) error {

	// Binary-ish formats need a real file.
	switch strings.ToLower(format) {
	case "png", "pdf", "bin":
		if output == "" {
			return fmt.Errorf("format %s requires -output", format)
		}
	}

	var text string
	switch strings.ToLower(format) {
	case "cheader":
		text = charrom.ExportCHeader(characters, cfg, opts)
	case "asm":
		text = charrom.ExportAssembly(characters, cfg, opts)
	case "hex":
		text = charrom.HexPreview(characters, cfg)
	case "layout":
		text = charrom.BitLayout(cfg)
	case "share":
		blob, err := charrom.EncodeShare(charrom.CharacterSet{
			Metadata:   charrom.Metadata{Name: opts.Name},
			Config:     cfg,
			Characters: characters,
		})
		if err != nil {
			return err
		}
		text = blob + "\n"
	case "png":
		return charrom.SaveSheetPNG(output, characters, cfg, charrom.SheetOptions{Columns: columns, Scale: scale})
	case "pdf":
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		return charrom.ExportPDF(f, characters, cfg, charrom.PDFOptions{
			Title:   opts.Name,
			Columns: columns,
			Labels:  true,
		})
	case "bin":
		return os.WriteFile(output, charrom.SerializeCharacterROM(characters, cfg), 0o644)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if output == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(output, []byte(text), 0o644)
}
