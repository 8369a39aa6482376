package textcodec

import "testing"

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name  string
		input []uint16
		want  rune
		size  int
	}{
		{
			name:  "ASCII",
			input: []uint16{'a'},
			want:  'a',
			size:  1,
		},
		{
			name:  "BMP",
			input: []uint16{0x20AC},
			want:  0x20AC,
			size:  1,
		},
		{
			name:  "BMP just below surrogates",
			input: []uint16{0xD7FF},
			want:  0xD7FF,
			size:  1,
		},
		{
			name:  "BMP just above surrogates",
			input: []uint16{0xE000},
			want:  0xE000,
			size:  1,
		},
		{
			name:  "surrogate pair minimum",
			input: []uint16{0xD800, 0xDC00},
			want:  0x10000,
			size:  2,
		},
		{
			name:  "surrogate pair emoji",
			input: []uint16{0xD83D, 0xDE00},
			want:  0x1F600,
			size:  2,
		},
		{
			name:  "surrogate pair maximum",
			input: []uint16{0xDBFF, 0xDFFF},
			want:  0x10FFFF,
			size:  2,
		},
		{
			name:  "lone high surrogate at end",
			input: []uint16{0xD800},
			want:  ReplacementChar,
			size:  1,
		},
		{
			name:  "lone low surrogate",
			input: []uint16{0xDC00},
			want:  ReplacementChar,
			size:  1,
		},
		{
			name:  "two high surrogates",
			input: []uint16{0xD800, 0xD800},
			want:  ReplacementChar,
			size:  1,
		},
		{
			name:  "high surrogate before BMP",
			input: []uint16{0xD800, 'a'},
			want:  ReplacementChar,
			size:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := DecodeUTF16(tt.input)
			if r != tt.want || size != tt.size {
				t.Errorf("DecodeUTF16(%x) = (%#x, %d), want (%#x, %d)",
					tt.input, r, size, tt.want, tt.size)
			}
		})
	}
}

// A run of malformed units yields exactly one replacement per unit.
func TestDecodeUTF16MalformedRun(t *testing.T) {
	input := []uint16{0xD800, 0xD801, 0xDC00} // high, then valid pair
	r, size := DecodeUTF16(input)
	if r != ReplacementChar || size != 1 {
		t.Fatalf("first decode = (%#x, %d), want (%#x, 1)", r, size, ReplacementChar)
	}
	r, size = DecodeUTF16(input[1:])
	if r != 0x10400 || size != 2 {
		t.Errorf("second decode = (%#x, %d), want (0x10400, 2)", r, size)
	}
}

func TestSurrogatePredicates(t *testing.T) {
	tests := []struct {
		r         rune
		surrogate bool
		high, low bool
	}{
		{0xD7FF, false, false, false},
		{0xD800, true, true, false},
		{0xDBFF, true, true, false},
		{0xDC00, true, false, true},
		{0xDFFF, true, false, true},
		{0xE000, false, false, false},
		{'a', false, false, false},
	}
	for _, tt := range tests {
		if got := IsSurrogate(tt.r); got != tt.surrogate {
			t.Errorf("IsSurrogate(%#x) = %v, want %v", tt.r, got, tt.surrogate)
		}
		if got := IsHighSurrogate(tt.r); got != tt.high {
			t.Errorf("IsHighSurrogate(%#x) = %v, want %v", tt.r, got, tt.high)
		}
		if got := IsLowSurrogate(tt.r); got != tt.low {
			t.Errorf("IsLowSurrogate(%#x) = %v, want %v", tt.r, got, tt.low)
		}
	}
}

func TestDecodeSurrogatePair(t *testing.T) {
	tests := []struct {
		high, low uint16
		want      rune
	}{
		{0xD800, 0xDC00, 0x10000},
		{0xD83D, 0xDE00, 0x1F600},
		{0xDBFF, 0xDFFF, 0x10FFFF},
	}
	for _, tt := range tests {
		if got := DecodeSurrogatePair(tt.high, tt.low); got != tt.want {
			t.Errorf("DecodeSurrogatePair(%#x, %#x) = %#x, want %#x",
				tt.high, tt.low, got, tt.want)
		}
	}
}

// Every astral scalar survives an encode/decode round trip through
// UTF-16.
func TestUTF16RoundTrip(t *testing.T) {
	var dst [2]uint16
	for r := rune(0x10000); r <= MaxScalar; r += 0x101 {
		n := EncodeUTF16(dst[:], r)
		if n != 2 {
			t.Fatalf("EncodeUTF16(%#x) wrote %d units, want 2", r, n)
		}
		got, size := DecodeUTF16(dst[:])
		if got != r || size != 2 {
			t.Fatalf("round trip %#x: decoded (%#x, %d)", r, got, size)
		}
	}
	if n := EncodeUTF16(dst[:], 0x20AC); n != 1 || dst[0] != 0x20AC {
		t.Errorf("EncodeUTF16(0x20AC) = (%x, %d), want ([20ac], 1)", dst[:n], n)
	}
}
