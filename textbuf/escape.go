package textbuf

import "github.com/depp/later-darker/textcodec"

// minEscapeSpace is the size of the largest atomic escape sequence,
// \U00HHHHHH. A single Grow from any state yields at least 24 bytes of
// headroom (see growSize), so one Grow is always enough to write one
// escape.
const minEscapeSpace = 10

const hexDigits = "0123456789abcdef"

// escapeTable maps an ASCII byte to its escape disposition: 0 passes
// the byte through, 'x' hex-escapes it, and anything else is the
// second character of a two-character backslash escape.
var escapeTable = [128]byte{
	'"':  '"',
	'\\': '\\',
	'\t': 't',
	'\n': 'n',
	'\r': 'r',
	0x7F: 'x',
}

func init() {
	for c := 0; c < 0x20; c++ {
		if escapeTable[c] == 0 {
			escapeTable[c] = 'x'
		}
	}
}

func (b *Buffer) appendHexEscape8(c byte) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'x'
	p[2] = hexDigits[c>>4]
	p[3] = hexDigits[c&15]
	b.pos += 4
}

func (b *Buffer) appendHexEscape16(r rune) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'u'
	p[2] = hexDigits[r>>12&15]
	p[3] = hexDigits[r>>8&15]
	p[4] = hexDigits[r>>4&15]
	p[5] = hexDigits[r&15]
	b.pos += 6
}

func (b *Buffer) appendHexEscape32(r rune) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'U'
	p[2] = '0'
	p[3] = '0'
	p[4] = hexDigits[r>>20&15]
	p[5] = hexDigits[r>>16&15]
	p[6] = hexDigits[r>>12&15]
	p[7] = hexDigits[r>>8&15]
	p[8] = hexDigits[r>>4&15]
	p[9] = hexDigits[r&15]
	b.pos += 10
}

// AppendEscaped appends a string with characters escaped as necessary.
//
// Printable ASCII passes through unchanged. Tab, newline, carriage
// return, double quote, and backslash become two-character escapes.
// Other control bytes, and any byte that is not part of valid UTF-8,
// become \xHH, consuming exactly the offending byte. Valid non-ASCII
// scalars become \uHHHH below U+10000 and \U00HHHHHH above it. Each
// escape identifies exactly one source byte or scalar, so the output
// is reversible in principle.
func (b *Buffer) AppendEscaped(s string) {
	for i := 0; i < len(s); {
		if b.Avail() < minEscapeSpace {
			b.Grow()
		}
		c := s[i]
		if c < 0x80 {
			i++
			switch e := escapeTable[c]; e {
			case 0:
				b.data[b.pos] = c
				b.pos++
			case 'x':
				b.appendHexEscape8(c)
			default:
				b.data[b.pos] = '\\'
				b.data[b.pos+1] = e
				b.pos += 2
			}
			continue
		}
		r, n, ok := textcodec.DecodeUTF8String(s[i:])
		if !ok {
			b.appendHexEscape8(c)
			i++
			continue
		}
		i += n
		if r < 0x10000 {
			b.appendHexEscape16(r)
		} else {
			b.appendHexEscape32(r)
		}
	}
}

// AppendQuoted appends a string enclosed in quotes, with characters
// escaped.
func (b *Buffer) AppendQuoted(s string) {
	b.AppendChar('"')
	b.AppendEscaped(s)
	b.AppendChar('"')
}

// AppendWide appends a UTF-16 string, re-encoded as UTF-8. Unpaired
// surrogates are replaced with the replacement character, one per
// malformed unit.
func (b *Buffer) AppendWide(units []uint16) {
	for i := 0; i < len(units); {
		if b.Avail() < 4 {
			b.Grow()
		}
		if u := units[i]; u < 0x80 {
			b.data[b.pos] = byte(u)
			b.pos++
			i++
			continue
		}
		r, n := textcodec.DecodeUTF16(units[i:])
		i += n
		b.pos += textcodec.EncodeUTF8(b.data[b.pos:], r)
	}
}

// AppendWideEscaped appends a UTF-16 string with characters escaped as
// necessary. ASCII escapes as in AppendEscaped. Other BMP units,
// including unpaired surrogates, become \uHHHH of the unit itself;
// surrogate pairs become \U00HHHHHH of the combined scalar.
func (b *Buffer) AppendWideEscaped(units []uint16) {
	for i := 0; i < len(units); {
		if b.Avail() < minEscapeSpace {
			b.Grow()
		}
		u := units[i]
		if u < 0x80 {
			i++
			switch e := escapeTable[u]; e {
			case 0:
				b.data[b.pos] = byte(u)
				b.pos++
			case 'x':
				b.appendHexEscape8(byte(u))
			default:
				b.data[b.pos] = '\\'
				b.data[b.pos+1] = e
				b.pos += 2
			}
			continue
		}
		if textcodec.IsHighSurrogate(rune(u)) && i+1 < len(units) &&
			textcodec.IsLowSurrogate(rune(units[i+1])) {
			b.appendHexEscape32(textcodec.DecodeSurrogatePair(u, units[i+1]))
			i += 2
			continue
		}
		b.appendHexEscape16(rune(u))
		i++
	}
}

// AppendWideQuoted appends a UTF-16 string enclosed in quotes, with
// characters escaped.
func (b *Buffer) AppendWideQuoted(units []uint16) {
	b.AppendChar('"')
	b.AppendWideEscaped(units)
	b.AppendChar('"')
}
