// Package logger is the front-end API of the logging layer.
//
// A Logger builds one core.Record per call, captures the call site,
// and hands the record to its handler. Records are call-local and
// rendering is total, so a log call can never fail; the only fallible
// step, the sink write, is best-effort and its errors are discarded.
//
// Fail and Check are the fatal path: they render the record in its
// most visible form (console banner, or an error dialog on Windows)
// and then terminate the process. This is the one place the output is
// guaranteed, as much as possible, to reach the user before exit.
//
// The package-level functions log through a default logger writing to
// the console, which can be replaced with SetDefault.
package logger
