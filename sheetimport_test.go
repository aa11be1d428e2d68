package charrom

import (
	"path/filepath"
	"testing"
)

func TestImportSheetImageMissingFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(8, 8, PaddingRight, BitLTR)
	if _, err := ImportSheetImage(filepath.Join(t.TempDir(), "absent.png"), cfg, SheetImportOptions{}); err == nil {
		t.Error("expected error for unreadable image")
	}
}

func TestImportSheetImageInvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := ImportSheetImage("whatever.png", CharacterSetConfig{}, SheetImportOptions{}); err == nil {
		t.Error("expected config validation error")
	}
}

func TestImportSheetImageRoundTrip(t *testing.T) {
	t.Parallel()

	// Render a sheet to PNG, read it back, and expect the same
	// pixel grids.
	cfg := testConfig(8, 8, PaddingRight, BitLTR)
	chars := []Character{
		randomCharacter(8, 8, 31),
		randomCharacter(8, 8, 32),
		randomCharacter(8, 8, 33),
		randomCharacter(8, 8, 34),
	}

	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := SaveSheetPNG(path, chars, cfg, SheetOptions{Columns: 2, Scale: 1}); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	imported, err := ImportSheetImage(path, cfg, SheetImportOptions{})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(imported) != len(chars) {
		t.Fatalf("expected %d characters, got %d", len(chars), len(imported))
	}
	for i := range chars {
		if !imported[i].Equal(chars[i]) {
			t.Errorf("character %d did not survive the image round trip", i)
		}
	}
}
