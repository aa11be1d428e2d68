package charrom

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
)

// Shareable character set blobs: a compact JSON envelope, base64 and
// URI encoded for embedding in a URL fragment.

// shareVersion is the only envelope version this code reads or
// writes. Decoding rejects anything else.
const shareVersion = 1

// shareEnvelope is the wire form of a shared character set. The
// config is flattened into a four-element array to keep fragments
// short.
type shareEnvelope struct {
	V int    `json:"v"`
	N string `json:"n"`
	D string `json:"d"`
	C [4]any `json:"c"`
	B string `json:"b"`
}

// EncodeShare packs a character set into a URL-fragment-safe string.
func EncodeShare(set CharacterSet) (string, error) {
	if err := set.Config.Validate(); err != nil {
		return "", fmt.Errorf("encoding share blob: %w", err)
	}
	env := shareEnvelope{
		V: shareVersion,
		N: set.Metadata.Name,
		D: set.Metadata.Description,
		C: [4]any{
			set.Config.Width,
			set.Config.Height,
			string(set.Config.Padding),
			string(set.Config.BitDirection),
		},
		B: base64.StdEncoding.EncodeToString(SerializeCharacterROM(set.Characters, set.Config)),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encoding share blob: %w", err)
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(raw)), nil
}

// DecodeShare is the structural inverse of EncodeShare. Unsupported
// versions and malformed envelopes are returned as errors for the
// caller to surface.
func DecodeShare(encoded string) (CharacterSet, error) {
	unescaped, err := url.QueryUnescape(encoded)
	if err != nil {
		return CharacterSet{}, fmt.Errorf("decoding share blob: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return CharacterSet{}, fmt.Errorf("decoding share blob: %w", err)
	}
	var env shareEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return CharacterSet{}, fmt.Errorf("decoding share blob: %w", err)
	}
	if env.V != shareVersion {
		return CharacterSet{}, fmt.Errorf("unsupported share version %d (supported: %d)", env.V, shareVersion)
	}

	cfg, err := shareConfig(env.C)
	if err != nil {
		return CharacterSet{}, fmt.Errorf("decoding share blob: %w", err)
	}
	rom, err := base64.StdEncoding.DecodeString(env.B)
	if err != nil {
		return CharacterSet{}, fmt.Errorf("decoding share blob data: %w", err)
	}

	return CharacterSet{
		Metadata: Metadata{
			Name:        env.N,
			Description: env.D,
			Source:      "shared",
		},
		Config:     cfg,
		Characters: ParseCharacterROM(rom, cfg),
	}, nil
}

// shareConfig rebuilds a config from the flattened [width, height,
// padding, bitDirection] array. JSON numbers arrive as float64.
func shareConfig(c [4]any) (CharacterSetConfig, error) {
	width, okW := c[0].(float64)
	height, okH := c[1].(float64)
	padding, okP := c[2].(string)
	bitDir, okB := c[3].(string)
	if !okW || !okH || !okP || !okB {
		return CharacterSetConfig{}, fmt.Errorf("malformed share config %v", c)
	}
	cfg := CharacterSetConfig{
		Width:        int(width),
		Height:       int(height),
		Padding:      Padding(padding),
		BitDirection: BitDirection(bitDir),
	}
	if err := cfg.Validate(); err != nil {
		return CharacterSetConfig{}, err
	}
	return cfg, nil
}
