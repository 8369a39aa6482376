package textcodec

// IsSurrogate reports whether r is a UTF-16 surrogate code point.
func IsSurrogate(r rune) bool {
	return 0xD800 <= r && r < 0xE000
}

// IsHighSurrogate reports whether r is a high (leading) surrogate.
func IsHighSurrogate(r rune) bool {
	return 0xD800 <= r && r < 0xDC00
}

// IsLowSurrogate reports whether r is a low (trailing) surrogate.
func IsLowSurrogate(r rune) bool {
	return 0xDC00 <= r && r < 0xE000
}

// DecodeSurrogatePair combines a high and low surrogate into a single
// scalar value. Both units must be surrogates of the correct half.
func DecodeSurrogatePair(high, low uint16) rune {
	const offset = (0xD800 << 10) + 0xDC00 - 0x10000
	return rune(high)<<10 + rune(low) - offset
}

// DecodeUTF16 decodes one scalar value from the start of units.
//
// A BMP code unit yields itself with size 1. A high surrogate followed
// by a low surrogate yields the combined scalar with size 2. Any
// unpaired surrogate (a lone low surrogate, a high surrogate at end of
// input, or a high surrogate followed by anything but a low surrogate)
// yields exactly one ReplacementChar with size 1, so each malformed
// unit produces exactly one replacement in the output. Decoding an
// empty slice returns size 0.
func DecodeUTF16(units []uint16) (r rune, size int) {
	if len(units) == 0 {
		return ReplacementChar, 0
	}
	u := rune(units[0])
	if !IsSurrogate(u) {
		return u, 1
	}
	if IsHighSurrogate(u) && len(units) > 1 && IsLowSurrogate(rune(units[1])) {
		return DecodeSurrogatePair(units[0], units[1]), 2
	}
	return ReplacementChar, 1
}

// EncodeUTF16 writes the UTF-16 encoding of r into dst and returns the
// number of units written (1 or 2). The caller must supply a valid
// scalar value and at least 2 units of space.
func EncodeUTF16(dst []uint16, r rune) int {
	if r < 0x10000 {
		dst[0] = uint16(r)
		return 1
	}
	r -= 0x10000
	dst[0] = 0xD800 + uint16(r>>10)
	dst[1] = 0xDC00 + uint16(r&0x3FF)
	return 2
}
