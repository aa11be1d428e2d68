package charrom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Raw ROM file import: no header, no magic, just packed character
// bytes whose meaning comes entirely from the supplied config.

// MaxROMFileSize is the import size cap. Character ROMs are small;
// anything bigger is almost certainly not one.
const MaxROMFileSize = 1 << 20

// romExtensions are the accepted ROM dump file extensions.
var romExtensions = map[string]bool{
	".bin": true,
	".rom": true,
	".chr": true,
	".fnt": true,
	".dat": true,
}

// ValidateROMFile checks a candidate ROM file's name and size before
// reading it.
func ValidateROMFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !romExtensions[ext] {
		return fmt.Errorf("unsupported file extension %q: expected .bin, .rom, .chr, .fnt or .dat", ext)
	}
	if size > MaxROMFileSize {
		return fmt.Errorf("file is %d bytes, larger than the %d byte limit", size, int64(MaxROMFileSize))
	}
	return nil
}

// LoadROMFile reads and validates a ROM dump and decodes it into
// characters under the given config.
func LoadROMFile(path string, cfg CharacterSetConfig) ([]Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}
	if err := ValidateROMFile(info.Name(), info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}
	return ParseCharacterROM(data, cfg), nil
}
