// Package formatter renders log records into text.
//
// Rendering is total: it never fails and never returns an error.
// Anything that cannot be represented faithfully is escaped or
// replaced, so a formatter call always produces usable output. The
// three shapes are the single-line console form (WriteLine), the
// multi-line block form used for fatal-error dialogs (WriteBlock), and
// a machine-readable JSON form (WriteJSON).
//
// String attribute values are quoted only when needed. The quoting
// decision depends on where the string appears: an inline token in a
// key=value list must not contain spaces at all, while a string on its
// own line only needs quoting for leading or trailing spaces. See
// NeedsQuoting.
package formatter
