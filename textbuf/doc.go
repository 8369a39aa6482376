// Package textbuf provides automatically growing text buffers used to
// assemble log output.
//
// Buffer holds bytes and WideBuffer holds UTF-16 code units. Both can
// adopt caller-supplied storage (typically a small array embedded in a
// handler) and only move to their own heap storage once they outgrow
// it, so a handler that logs short lines never allocates after
// construction. Clear resets the write cursor without releasing
// storage, which is how handlers reuse one buffer across calls.
//
// Growth follows growSize(c) = (c+16)*3/2, the same curve as Git's
// alloc_nr. The growth delta is monotonically increasing and the first
// growth from empty yields 24 units of headroom, which the escaping
// routines rely on: after any single Grow there is always room for the
// largest atomic escape sequence (10 bytes, \U00HHHHHH).
//
// Growth is amortized O(1) per appended unit. Allocation failure is
// fatal (the Go runtime aborts); buffer operations never return errors
// and never partially write.
package textbuf
