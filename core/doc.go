// Package core defines the shared types of the logging layer.
//
// It provides the Level type for message severity, the Value type, a
// closed tagged union over the kinds of data that can be logged, the
// Attr name/value pair, the Location of a call site, and the Record
// type that combines them into one log event.
//
// A Record is transient: it is assembled during a single log call,
// handed to a handler, rendered, and discarded. Nothing in this
// package performs I/O. Severity ordering (Debug < Info < Warn <
// Error) is used for presentation; filtering, when wanted, belongs to
// the logger front end.
package core
