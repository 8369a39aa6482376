package formatter

import (
	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/textbuf"
)

// levelInfo holds the presentation of one severity level. The names
// all have the same width so log messages line up.
type levelInfo struct {
	color string
	name  string
	emoji string
}

var levels = [...]levelInfo{
	core.DebugLevel: {"\x1b[36m", "DEBUG", "\U0001F4D8"},
	core.InfoLevel:  {"", "INFO ", "\U0001F4C4"},
	core.WarnLevel:  {"\x1b[33m", "WARN ", "⚠️"},
	core.ErrorLevel: {"\x1b[31m", "ERROR", "\U0001F6D1"},
}

func getLevelInfo(level core.Level) *levelInfo {
	if int(level) < 0 || int(level) >= len(levels) {
		return &levels[core.ErrorLevel]
	}
	return &levels[level]
}

func appendLocation(buf *textbuf.Buffer, location core.Location) {
	buf.AppendString(location.File)
	buf.AppendChar(':')
	buf.AppendInt(int64(location.Line))
	buf.AppendString(" (")
	buf.AppendString(location.Function)
	buf.AppendChar(')')
}

func appendValue(buf *textbuf.Buffer, value core.Value, context Context) {
	switch value.Kind() {
	case core.NullKind:
		buf.AppendString("(null)")
	case core.Int64Kind:
		buf.AppendInt(value.Int64())
	case core.Uint64Kind:
		buf.AppendUint(value.Uint64())
	case core.Float64Kind:
		buf.AppendFloat(value.Float64())
	case core.BoolKind:
		buf.AppendBool(value.Bool())
	case core.StringKind:
		s := value.String()
		if NeedsQuoting(s, context) {
			buf.AppendQuoted(s)
		} else {
			buf.AppendString(s)
		}
	case core.WideStringKind:
		units := value.Wide()
		if NeedsQuotingWide(units, context) {
			buf.AppendWideQuoted(units)
		} else {
			buf.AppendWide(units)
		}
	}
}

// WriteLine renders a record as a single line, ending with a newline.
// The shape is:
//
//	[emoji ]LEVEL [file:line (function): ]message[ name=value]...
//
// Attribute values use the inline quoting context.
func WriteLine(buf *textbuf.Buffer, record *core.Record, useColor, useEmoji bool) {
	info := getLevelInfo(record.Level)
	if useEmoji {
		buf.AppendString(info.emoji)
		buf.AppendChar(' ')
	}
	if useColor && info.color != "" {
		buf.AppendString(info.color)
	}
	buf.AppendString(info.name)
	if useColor && info.color != "" {
		buf.AppendString("\x1b[0m")
	}
	buf.AppendChar(' ')
	if !record.Location.IsEmpty() {
		appendLocation(buf, record.Location)
		buf.AppendString(": ")
	}
	buf.AppendString(record.Message)
	for _, attr := range record.Attrs {
		buf.AppendChar(' ')
		buf.AppendString(attr.Name)
		buf.AppendChar('=')
		appendValue(buf, attr.Value, ContextInline)
	}
	buf.AppendChar('\n')
}

// WriteBlock renders a record as a multi-line block, the shape used
// for fatal-error dialogs. The message comes first, separated from
// the attributes by a blank line so a human can scan the key/value
// pairs, then each attribute on its own line, then the location.
// Attribute values use the line quoting context.
func WriteBlock(buf *textbuf.Buffer, record *core.Record) {
	buf.AppendString(record.Message)
	buf.AppendChar('\n')
	for _, attr := range record.Attrs {
		buf.AppendChar('\n')
		buf.AppendString(attr.Name)
		buf.AppendString(": ")
		appendValue(buf, attr.Value, ContextLine)
	}
	if !record.Location.IsEmpty() {
		buf.AppendString("\nlocation: ")
		appendLocation(buf, record.Location)
	}
}
