//go:build windows

package handler

import (
	"golang.org/x/sys/windows"

	"github.com/depp/later-darker/textbuf"
)

const mbIconStop = 0x00000010

// showErrorDialog raises a modal error dialog with the given text.
// The text is converted to UTF-16 at the last moment, as the Windows
// API wants it.
func showErrorDialog(text string) {
	var buf textbuf.WideBuffer
	buf.AppendUTF8(text)
	buf.AppendUnit(0)
	_, _ = windows.MessageBox(0, &buf.Units()[0], nil, mbIconStop)
}
