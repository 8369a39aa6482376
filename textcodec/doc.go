// Package textcodec implements strict, single-scalar UTF-8 and UTF-16
// codecs for the logging layer.
//
// Unlike the standard library's utf8 and utf16 packages, these functions
// are built for byte-at-a-time escaping loops: a failed decode always
// reports exactly how much input to discard (one code unit), so callers
// can hex-escape the offending unit and keep going. Decoding never
// panics and never loses input; every malformed sequence resolves to
// the replacement character with guaranteed forward progress.
//
// DecodeUTF8 validates strictly. Over-long sequences, encoded
// surrogates, 5- and 6-byte lead bytes, bare continuation bytes, and
// sequences truncated by the end of input are all rejected.
package textcodec
