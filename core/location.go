package core

import (
	"runtime"
	"strings"
)

// Location is a location in the source code. A zero Location means
// "no location": formatters omit the location clause entirely.
type Location struct {
	File     string
	Line     int
	Function string
}

// IsEmpty reports whether the location is absent.
func (l Location) IsEmpty() bool { return l.File == "" }

// sourcePrefix is the path prefix of this module's source tree,
// derived from this file's own compiled path so call-site paths can be
// logged relative to the module root.
var sourcePrefix = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	const thisFile = "core/location.go"
	if strings.HasSuffix(file, thisFile) {
		return file[:len(file)-len(thisFile)]
	}
	return ""
}()

// GetCaller captures the location of a call site. skip is the number
// of stack frames to ascend, with 0 identifying the caller of
// GetCaller. Paths inside the module are shortened relative to the
// module root, and path separators are normalized to forward slashes.
func GetCaller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	if sourcePrefix != "" && strings.HasPrefix(file, sourcePrefix) {
		file = file[len(sourcePrefix):]
	}
	file = strings.ReplaceAll(file, "\\", "/")
	var function string
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
	}
	return Location{File: file, Line: line, Function: function}
}
