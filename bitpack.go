package charrom

// Bit packing between pixel grids and byte streams.
//
// Each pixel row packs into BytesPerRow() bytes. A column's bit slot
// within the row is its column index, adjusted by the pad width when
// padding is "left" (pixel data right-justified in the row). Within a
// byte, "ltr"/"msb" puts lower columns in higher bits; "rtl"/"lsb"
// puts them in lower bits. Decode inverts the same mapping, so
// encode/decode round-trip exactly for any config.

// rowBitSlot returns the byte index within the row and the bit mask
// for a given column.
func rowBitSlot(col int, cfg CharacterSetConfig) (byteIdx int, mask byte) {
	bit := col
	if cfg.Padding == PaddingLeft {
		bit += cfg.BytesPerRow()*8 - cfg.Width
	}
	byteIdx = bit / 8
	if cfg.msbFirst() {
		mask = 1 << (7 - bit%8)
	} else {
		mask = 1 << (bit % 8)
	}
	return byteIdx, mask
}

// CharacterToBytes packs a character's pixel grid into its ROM byte
// representation under the given config. The result is always exactly
// BytesPerCharacter() long; pixels outside the configured dimensions
// are ignored.
func CharacterToBytes(c Character, cfg CharacterSetConfig) []byte {
	bytesPerRow := cfg.BytesPerRow()
	out := make([]byte, cfg.BytesPerCharacter())
	for row := 0; row < cfg.Height; row++ {
		base := row * bytesPerRow
		for col := 0; col < cfg.Width; col++ {
			if !c.At(row, col) {
				continue
			}
			byteIdx, mask := rowBitSlot(col, cfg)
			out[base+byteIdx] |= mask
		}
	}
	return out
}

// BytesToCharacter unpacks one character from data starting at
// offset. Reads past the end of data yield background pixels instead
// of failing; ROM dumps are frequently truncated and a partial
// trailing character is still useful.
func BytesToCharacter(data []byte, offset int, cfg CharacterSetConfig) Character {
	bytesPerRow := cfg.BytesPerRow()
	c := NewCharacter(cfg.Width, cfg.Height)
	for row := 0; row < cfg.Height; row++ {
		base := offset + row*bytesPerRow
		for col := 0; col < cfg.Width; col++ {
			byteIdx, mask := rowBitSlot(col, cfg)
			idx := base + byteIdx
			if idx < 0 || idx >= len(data) {
				continue
			}
			c.Pixels[row][col] = data[idx]&mask != 0
		}
	}
	return c
}
