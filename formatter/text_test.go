package formatter

import (
	"strings"
	"testing"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/textbuf"
)

var testLocation = core.Location{
	File:     "gl/shader.go",
	Line:     42,
	Function: "gl.CompileShader",
}

func renderLine(record *core.Record, useColor, useEmoji bool) string {
	var buf textbuf.Buffer
	WriteLine(&buf, record, useColor, useEmoji)
	return buf.String()
}

func TestWriteLine(t *testing.T) {
	tests := []struct {
		name   string
		record core.Record
		want   string
	}{
		{
			name:   "message only",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "Ready."),
			want:   "INFO  Ready.\n",
		},
		{
			name:   "level names are fixed width",
			record: core.NewRecord(core.DebugLevel, core.Location{}, "x"),
			want:   "DEBUG x\n",
		},
		{
			name:   "warn",
			record: core.NewRecord(core.WarnLevel, core.Location{}, "x"),
			want:   "WARN  x\n",
		},
		{
			name: "location and attribute",
			record: core.NewRecord(core.ErrorLevel, testLocation, "File missing.",
				core.Attr{Name: "file", Value: core.StringValue("shader/triangle.vert")}),
			want: "ERROR gl/shader.go:42 (gl.CompileShader): File missing. file=shader/triangle.vert\n",
		},
		{
			name: "quoted attribute",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "msg",
				core.Attr{Name: "text", Value: core.StringValue("hello world")}),
			want: `INFO  msg text="hello world"` + "\n",
		},
		{
			name: "empty string attribute is quoted",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "msg",
				core.Attr{Name: "s", Value: core.StringValue("")}),
			want: `INFO  msg s=""` + "\n",
		},
		{
			name: "scalar attributes",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "msg",
				core.Attr{Name: "n", Value: core.Int64Value(-3)},
				core.Attr{Name: "u", Value: core.Uint64Value(7)},
				core.Attr{Name: "f", Value: core.Float64Value(1.5)},
				core.Attr{Name: "b", Value: core.BoolValue(true)},
				core.Attr{Name: "z", Value: core.Null()}),
			want: "INFO  msg n=-3 u=7 f=1.5 b=true z=(null)\n",
		},
		{
			name: "wide attribute",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "msg",
				core.Attr{Name: "w", Value: core.WideValue([]uint16{'h', 'i'})}),
			want: "INFO  msg w=hi\n",
		},
		{
			name: "wide attribute quoted",
			record: core.NewRecord(core.InfoLevel, core.Location{}, "msg",
				core.Attr{Name: "w", Value: core.WideValue([]uint16{0x20AC})}),
			want: `INFO  msg w="\u20ac"` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderLine(&tt.record, false, false); got != tt.want {
				t.Errorf("WriteLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteLineColor(t *testing.T) {
	record := core.NewRecord(core.ErrorLevel, core.Location{}, "boom")
	got := renderLine(&record, true, false)
	want := "\x1b[31mERROR\x1b[0m boom\n"
	if got != want {
		t.Errorf("WriteLine with color = %q, want %q", got, want)
	}

	// Info has no color; no escape sequences should appear.
	record = core.NewRecord(core.InfoLevel, core.Location{}, "ok")
	if got := renderLine(&record, true, false); strings.Contains(got, "\x1b") {
		t.Errorf("info line contains escape sequences: %q", got)
	}
}

func TestWriteLineEmoji(t *testing.T) {
	record := core.NewRecord(core.ErrorLevel, core.Location{}, "boom")
	got := renderLine(&record, false, true)
	want := "\U0001F6D1 ERROR boom\n"
	if got != want {
		t.Errorf("WriteLine with emoji = %q, want %q", got, want)
	}
}

func TestWriteBlock(t *testing.T) {
	record := core.NewRecord(core.ErrorLevel, testLocation, "Shader compilation failed.",
		core.Attr{Name: "file", Value: core.StringValue("shader/triangle.vert")},
		core.Attr{Name: "reason", Value: core.StringValue("syntax error on line 3")})

	var buf textbuf.Buffer
	WriteBlock(&buf, &record)
	want := "Shader compilation failed.\n" +
		"\nfile: shader/triangle.vert" +
		"\nreason: syntax error on line 3" +
		"\nlocation: gl/shader.go:42 (gl.CompileShader)"
	if got := buf.String(); got != want {
		t.Errorf("WriteBlock = %q, want %q", got, want)
	}
}

// Block form uses the line quoting context: interior spaces pass
// through, but leading spaces still force quoting.
func TestWriteBlockQuoting(t *testing.T) {
	record := core.NewRecord(core.ErrorLevel, core.Location{}, "msg",
		core.Attr{Name: "a", Value: core.StringValue("has spaces inside")},
		core.Attr{Name: "b", Value: core.StringValue(" leading")})

	var buf textbuf.Buffer
	WriteBlock(&buf, &record)
	want := "msg\n" +
		"\na: has spaces inside" +
		"\nb: \" leading\""
	if got := buf.String(); got != want {
		t.Errorf("WriteBlock = %q, want %q", got, want)
	}
}

func TestWriteBlockNoLocation(t *testing.T) {
	record := core.NewRecord(core.ErrorLevel, core.Location{}, "msg")
	var buf textbuf.Buffer
	WriteBlock(&buf, &record)
	if got := buf.String(); got != "msg\n" {
		t.Errorf("WriteBlock = %q, want %q", got, "msg\n")
	}
}

// Rendering is total: arbitrary bytes in the message and attributes
// always produce output.
func TestWriteLineMalformedInput(t *testing.T) {
	record := core.NewRecord(core.InfoLevel, core.Location{}, "bad \xff bytes",
		core.Attr{Name: "v", Value: core.StringValue("\xc0\x80")})
	got := renderLine(&record, false, false)
	// The message is passed through as-is; the attribute value is
	// quoted and hex escaped.
	want := "INFO  bad \xff bytes v=\"\\xc0\\x80\"\n"
	if got != want {
		t.Errorf("WriteLine = %q, want %q", got, want)
	}
}

func BenchmarkWriteLine(b *testing.B) {
	record := core.NewRecord(core.ErrorLevel, testLocation, "File missing.",
		core.Attr{Name: "file", Value: core.StringValue("shader/triangle.vert")})
	var buf textbuf.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		WriteLine(&buf, &record, false, false)
	}
}
