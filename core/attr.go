package core

// Attr is a key-value pair that can be part of a log record.
type Attr struct {
	Name  string
	Value Value
}
