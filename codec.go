package charrom

import (
	"encoding/base64"
	"fmt"
)

// Character set <-> ROM image codec. A ROM image is the plain
// concatenation of each character's packed bytes in index order; no
// header, no magic, all semantics supplied by the config.

// SerializeCharacterROM packs every character into one contiguous ROM
// image in index order.
func SerializeCharacterROM(characters []Character, cfg CharacterSetConfig) []byte {
	perChar := cfg.BytesPerCharacter()
	out := make([]byte, 0, perChar*len(characters))
	for _, c := range characters {
		out = append(out, CharacterToBytes(c, cfg)...)
	}
	return out
}

// ParseCharacterROM splits a ROM image into fixed-size chunks and
// decodes each into a character. A truncated trailing chunk still
// produces a character, padded with background; hand-cut ROM dumps
// are the normal case, not an error.
func ParseCharacterROM(data []byte, cfg CharacterSetConfig) []Character {
	perChar := cfg.BytesPerCharacter()
	count := (len(data) + perChar - 1) / perChar
	characters := make([]Character, 0, count)
	for i := 0; i < count; i++ {
		characters = append(characters, BytesToCharacter(data, i*perChar, cfg))
	}
	return characters
}

// Serialize converts a character set into its persisted form, with
// the characters replaced by a base64 ROM image.
func Serialize(set CharacterSet) SerializedCharacterSet {
	rom := SerializeCharacterROM(set.Characters, set.Config)
	return SerializedCharacterSet{
		Metadata:   set.Metadata,
		Config:     set.Config,
		BinaryData: base64.StdEncoding.EncodeToString(rom),
	}
}

// Deserialize is the exact inverse of Serialize for the same config:
// it decodes the base64 ROM image back into characters.
func Deserialize(stored SerializedCharacterSet) (CharacterSet, error) {
	if err := stored.Config.Validate(); err != nil {
		return CharacterSet{}, fmt.Errorf("stored character set %q: %w", stored.Metadata.ID, err)
	}
	rom, err := base64.StdEncoding.DecodeString(stored.BinaryData)
	if err != nil {
		return CharacterSet{}, fmt.Errorf("decoding binary data for %q: %w", stored.Metadata.ID, err)
	}
	return CharacterSet{
		Metadata:   stored.Metadata,
		Config:     stored.Config,
		Characters: ParseCharacterROM(rom, stored.Config),
	}, nil
}
