package textbuf

import "strconv"

// growSize returns the next larger capacity for a dynamic buffer.
// Guaranteed that growSize(c)-c is monotonic, and growSize(0) = 24.
func growSize(c int) int {
	return (c + 16) * 3 / 2
}

// growSizeMinimum returns a larger capacity which is at least min.
func growSizeMinimum(c, min int) int {
	if n := growSize(c); n >= min {
		return n
	}
	return min
}

// A Buffer is an automatically growing byte buffer. The zero value is
// an empty buffer ready for use.
type Buffer struct {
	data []byte // backing storage; len(data) is the capacity
	pos  int    // write cursor; data[:pos] is valid content
}

// New returns a buffer that writes into the given preallocated storage.
// The storage is used until the buffer grows beyond its size, at which
// point the buffer switches to its own heap storage and never touches
// the original storage again.
func New(storage []byte) Buffer {
	return Buffer{data: storage}
}

// Size returns the number of bytes written.
func (b *Buffer) Size() int { return b.pos }

// Avail returns the amount of space available without growing.
func (b *Buffer) Avail() int { return len(b.data) - b.pos }

// Cap returns the total capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the data written to the buffer. The slice is only
// valid until the next append.
func (b *Buffer) Bytes() []byte { return b.data[:b.pos] }

// String returns a copy of the data written to the buffer.
func (b *Buffer) String() string { return string(b.data[:b.pos]) }

// Clear resets the write cursor without releasing storage.
func (b *Buffer) Clear() { b.pos = 0 }

// AppendChar appends a single byte.
func (b *Buffer) AppendChar(c byte) {
	if b.pos == len(b.data) {
		b.Grow()
	}
	b.data[b.pos] = c
	b.pos++
}

// Append appends the given bytes.
func (b *Buffer) Append(p []byte) {
	b.Reserve(len(p))
	copy(b.data[b.pos:], p)
	b.pos += len(p)
}

// AppendString appends the given string.
func (b *Buffer) AppendString(s string) {
	b.Reserve(len(s))
	copy(b.data[b.pos:], s)
	b.pos += len(s)
}

// AppendInt appends the decimal representation of a signed integer.
func (b *Buffer) AppendInt(v int64) {
	b.Reserve(20) // len("-9223372036854775808")
	b.pos = len(strconv.AppendInt(b.data[:b.pos], v, 10))
}

// AppendUint appends the decimal representation of an unsigned integer.
func (b *Buffer) AppendUint(v uint64) {
	b.Reserve(20)
	b.pos = len(strconv.AppendUint(b.data[:b.pos], v, 10))
}

// AppendFloat appends the shortest representation of a float.
func (b *Buffer) AppendFloat(v float64) {
	b.Reserve(32)
	b.pos = len(strconv.AppendFloat(b.data[:b.pos], v, 'g', -1, 64))
}

// AppendBool appends "true" or "false".
func (b *Buffer) AppendBool(v bool) {
	if v {
		b.AppendString("true")
	} else {
		b.AppendString("false")
	}
}

// Grow increases the amount of available space to write. After Grow,
// at least growSize(0) = 24 bytes are available.
func (b *Buffer) Grow() {
	b.reallocate(growSize(len(b.data)))
}

// Reserve ensures space is available to write the given number of
// bytes without growing.
func (b *Buffer) Reserve(n int) {
	if len(b.data)-b.pos < n {
		b.reallocate(growSizeMinimum(len(b.data), b.pos+n))
	}
}

func (b *Buffer) reallocate(newCapacity int) {
	data := make([]byte, newCapacity)
	copy(data, b.data[:b.pos])
	b.data = data
}
