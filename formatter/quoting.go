package formatter

// Context describes where a string value appears in the output, which
// determines how conservatively it must be quoted.
type Context int

const (
	// ContextInline is for strings appearing inline with other
	// content, as the value of a whitespace-delimited key=value pair.
	// Any space would split the token, so spaces force quoting.
	ContextInline Context = iota
	// ContextLine is for strings appearing on their own line.
	// Interior spaces are fine; only leading and trailing spaces need
	// quoting to stay visible.
	ContextLine
)

// NeedsQuoting reports whether a string should be quoted when logged.
// The empty string is always quoted. Any double quote, backslash, or
// byte outside the context's printable range forces quoting.
func NeedsQuoting(s string, context Context) bool {
	if s == "" {
		return true
	}
	min := byte(0x21)
	if context == ContextLine {
		if s[0] == ' ' || s[len(s)-1] == ' ' {
			return true
		}
		min = 0x20
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < min || c > 0x7E || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}

// NeedsQuotingWide is NeedsQuoting for a UTF-16 string, applying the
// same rule per code unit.
func NeedsQuotingWide(units []uint16, context Context) bool {
	if len(units) == 0 {
		return true
	}
	min := uint16(0x21)
	if context == ContextLine {
		if units[0] == ' ' || units[len(units)-1] == ' ' {
			return true
		}
		min = 0x20
	}
	for _, u := range units {
		if u < min || u > 0x7E || u == '"' || u == '\\' {
			return true
		}
	}
	return false
}
