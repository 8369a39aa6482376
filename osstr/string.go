package osstr

import "github.com/depp/later-darker/textbuf"

// ToString converts an OS-native UTF-16 string to UTF-8. Unpaired
// surrogates become replacement characters.
func ToString(wide []uint16) string {
	if len(wide) == 0 {
		return ""
	}
	var buf textbuf.Buffer
	buf.AppendWide(wide)
	return buf.String()
}

// ToWide converts a UTF-8 string to the OS-native UTF-16 encoding.
// Malformed bytes become replacement characters.
func ToWide(s string) []uint16 {
	if s == "" {
		return nil
	}
	var buf textbuf.WideBuffer
	buf.AppendUTF8(s)
	return buf.Units()
}
