package textcodec

// ReplacementChar is the Unicode replacement character, substituted for
// malformed input during decoding.
const ReplacementChar rune = 0xFFFD

// MaxScalar is the largest valid Unicode scalar value.
const MaxScalar rune = 0x10FFFF

// DecodeUTF8 decodes exactly one scalar value from the start of b.
//
// On success it returns the scalar and the number of bytes consumed
// (1-4). On any validation failure it returns ReplacementChar, a size
// of 1, and ok=false: the caller discards exactly one byte and retries
// at the next, so decoding always makes forward progress and
// terminates. Decoding an empty slice returns size 0.
func DecodeUTF8(b []byte) (r rune, size int, ok bool) {
	return decodeUTF8(b)
}

// DecodeUTF8String is DecodeUTF8 for a string, avoiding a copy.
func DecodeUTF8String(s string) (r rune, size int, ok bool) {
	return decodeUTF8(s)
}

func decodeUTF8[T []byte | string](b T) (rune, int, bool) {
	if len(b) == 0 {
		return ReplacementChar, 0, false
	}
	c := b[0]
	if c < 0x80 {
		// 1-byte sequence.
		return rune(c), 1, true
	}
	var r, min rune
	var need int
	switch {
	case c < 0xC0:
		// Continuation byte with no lead.
		return ReplacementChar, 1, false
	case c < 0xE0:
		// 2-byte sequence.
		r, need, min = rune(c&0x1F), 1, 0x80
	case c < 0xF0:
		// 3-byte sequence.
		r, need, min = rune(c&0x0F), 2, 0x800
	case c < 0xF8:
		// 4-byte sequence.
		r, need, min = rune(c&0x07), 3, 0x10000
	default:
		// 5- and 6-byte lead bytes are not valid UTF-8.
		return ReplacementChar, 1, false
	}
	if len(b) < 1+need {
		// Truncated by end of input.
		return ReplacementChar, 1, false
	}
	for i := 1; i <= need; i++ {
		c := b[i]
		if c&0xC0 != 0x80 {
			return ReplacementChar, 1, false
		}
		r = r<<6 | rune(c&0x3F)
	}
	if r < min || IsSurrogate(r) || r > MaxScalar {
		// Over-long encoding, encoded surrogate, or out of range.
		return ReplacementChar, 1, false
	}
	return r, 1 + need, true
}

// EncodeUTF8 writes the UTF-8 encoding of r into dst and returns the
// number of bytes written (1-4). The caller must supply a valid scalar
// value and at least 4 bytes of space.
func EncodeUTF8(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = byte(r>>6) | 0xC0
		dst[1] = byte(r)&0x3F | 0x80
		return 2
	case r < 0x10000:
		dst[0] = byte(r>>12) | 0xE0
		dst[1] = byte(r>>6)&0x3F | 0x80
		dst[2] = byte(r)&0x3F | 0x80
		return 3
	default:
		dst[0] = byte(r>>18) | 0xF0
		dst[1] = byte(r>>12)&0x3F | 0x80
		dst[2] = byte(r>>6)&0x3F | 0x80
		dst[3] = byte(r)&0x3F | 0x80
		return 4
	}
}
