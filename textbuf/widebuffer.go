package textbuf

import "github.com/depp/later-darker/textcodec"

// A WideBuffer is an automatically growing buffer of UTF-16 code
// units. It has reduced functionality compared to Buffer: strings are
// assembled in UTF-8 and converted to wide form at the last moment,
// just before handing them to an OS interface that wants UTF-16. The
// zero value is an empty buffer ready for use.
type WideBuffer struct {
	data []uint16
	pos  int
}

// NewWide returns a wide buffer that writes into the given preallocated
// storage. The storage is used until the buffer grows beyond its size,
// at which point the buffer switches to its own heap storage.
func NewWide(storage []uint16) WideBuffer {
	return WideBuffer{data: storage}
}

// Size returns the number of code units written.
func (b *WideBuffer) Size() int { return b.pos }

// Avail returns the number of code units available without growing.
func (b *WideBuffer) Avail() int { return len(b.data) - b.pos }

// Cap returns the total capacity in code units.
func (b *WideBuffer) Cap() int { return len(b.data) }

// Units returns the code units written to the buffer. The slice is
// only valid until the next append.
func (b *WideBuffer) Units() []uint16 { return b.data[:b.pos] }

// Clear resets the write cursor without releasing storage.
func (b *WideBuffer) Clear() { b.pos = 0 }

// AppendUnit appends a single code unit.
func (b *WideBuffer) AppendUnit(u uint16) {
	if b.pos == len(b.data) {
		b.Grow()
	}
	b.data[b.pos] = u
	b.pos++
}

// AppendWide appends a UTF-16 string.
func (b *WideBuffer) AppendWide(units []uint16) {
	b.Reserve(len(units))
	copy(b.data[b.pos:], units)
	b.pos += len(units)
}

// AppendUTF8 appends a UTF-8 string, converted to UTF-16. Malformed
// bytes are replaced with the replacement character, one per byte.
func (b *WideBuffer) AppendUTF8(s string) {
	if s == "" {
		return
	}
	// Check for ASCII fast path.
	var bits byte
	for i := 0; i < len(s); i++ {
		bits |= s[i]
	}
	if bits < 0x80 {
		b.Reserve(len(s))
		for i := 0; i < len(s); i++ {
			b.data[b.pos] = uint16(s[i])
			b.pos++
		}
		return
	}
	for i := 0; i < len(s); {
		if b.Avail() < 2 {
			b.Grow()
		}
		r, n, _ := textcodec.DecodeUTF8String(s[i:])
		i += n
		b.pos += textcodec.EncodeUTF16(b.data[b.pos:], r)
	}
}

// Grow increases the amount of available space to write.
func (b *WideBuffer) Grow() {
	b.reallocate(growSize(len(b.data)))
}

// Reserve ensures space is available to write the given number of code
// units without growing.
func (b *WideBuffer) Reserve(n int) {
	if len(b.data)-b.pos < n {
		b.reallocate(growSizeMinimum(len(b.data), b.pos+n))
	}
}

func (b *WideBuffer) reallocate(newCapacity int) {
	data := make([]uint16, newCapacity)
	copy(data, b.data[:b.pos])
	b.data = data
}
