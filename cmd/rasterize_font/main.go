// Command rasterize_font renders a TrueType font into a character
// ROM: each code point in the requested range becomes one fixed-size
// bitmap character, packed under the chosen bit layout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RetroStack/charrom"
)

func main() {
	fontPath := flag.String("font", "", "Path to the TTF font to rasterize (required)")
	output := flag.String("output", "", "Path for the packed ROM output (required)")
	width := flag.Int("width", 8, "Character cell width in pixels")
	height := flag.Int("height", 8, "Character cell height in pixels")
	first := flag.Int("first", 32, "First code point to render")
	last := flag.Int("last", 126, "Last code point to render (inclusive)")
	padding := flag.String("padding", "right", "Bit padding: left or right")
	bitdir := flag.String("bitdir", "ltr", "Bit direction: ltr or rtl")
	size := flag.Float64("size", 0, "Font point size (0 = cell height)")
	threshold := flag.Int("threshold", 64,
		"Alpha coverage (0-255) above which a pixel counts as foreground")
	flag.Parse()

	if *fontPath == "" || *output == "" {
		flag.Usage()
		os.Exit(1)
	}

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

	opts := []charrom.RasterizerOption{
		charrom.WithAlphaThreshold(uint8(*threshold)),
	}
	if *size > 0 {
		opts = append(opts, charrom.WithFontSize(*size))
	}
	rasterizer, err := charrom.LoadRasterizer(*fontPath, *width, *height, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runes := charrom.RuneRange(rune(*first), rune(*last))
	task := rasterizer.Start(runes, func(processed, total int) {
		fmt.Fprintf(os.Stderr, "\rRendering %d/%d glyphs...", processed, total)
	})
	characters, err := task.Result()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rom := charrom.SerializeCharacterROM(characters, cfg)
	if err := os.WriteFile(*output, rom, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d characters (%d bytes) to %s\n", len(characters), len(rom), *output)
}
