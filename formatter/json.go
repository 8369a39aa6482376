package formatter

import (
	"github.com/segmentio/encoding/json"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/textbuf"
)

// WriteJSON renders a record as a single JSON object, ending with a
// newline. Attribute order is preserved by building the object
// framing in the buffer; string escaping is delegated to the JSON
// encoder. Like the text forms, rendering never fails: a value the
// encoder rejects is rendered as a quoted-and-escaped string instead.
func WriteJSON(buf *textbuf.Buffer, record *core.Record) {
	buf.AppendString(`{"level":`)
	appendJSONString(buf, record.Level.String())
	if !record.Location.IsEmpty() {
		buf.AppendString(`,"file":`)
		appendJSONString(buf, record.Location.File)
		buf.AppendString(`,"line":`)
		buf.AppendInt(int64(record.Location.Line))
		buf.AppendString(`,"function":`)
		appendJSONString(buf, record.Location.Function)
	}
	buf.AppendString(`,"msg":`)
	appendJSONString(buf, record.Message)
	for _, attr := range record.Attrs {
		buf.AppendChar(',')
		appendJSONString(buf, attr.Name)
		buf.AppendChar(':')
		appendJSONValue(buf, attr.Value)
	}
	buf.AppendString("}\n")
}

func appendJSONValue(buf *textbuf.Buffer, value core.Value) {
	switch value.Kind() {
	case core.NullKind:
		buf.AppendString("null")
	case core.Int64Kind:
		buf.AppendInt(value.Int64())
	case core.Uint64Kind:
		buf.AppendUint(value.Uint64())
	case core.Float64Kind:
		appendJSONFloat(buf, value.Float64())
	case core.BoolKind:
		buf.AppendBool(value.Bool())
	case core.StringKind:
		appendJSONString(buf, value.String())
	case core.WideStringKind:
		var tmp textbuf.Buffer
		tmp.AppendWide(value.Wide())
		appendJSONString(buf, tmp.String())
	}
}

func appendJSONString(buf *textbuf.Buffer, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		buf.AppendQuoted(s)
		return
	}
	buf.Append(data)
}

func appendJSONFloat(buf *textbuf.Buffer, v float64) {
	// NaN and infinities are not valid JSON numbers; Marshal rejects
	// them, so fall back to a string.
	data, err := json.Marshal(v)
	if err != nil {
		buf.AppendChar('"')
		buf.AppendFloat(v)
		buf.AppendChar('"')
		return
	}
	buf.Append(data)
}
