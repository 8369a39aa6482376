package core

// Record is a record of one log message. Records are built during a
// single log call, rendered once, and discarded; they are never
// persisted or shared between goroutines.
type Record struct {
	Level    Level
	Location Location
	Message  string
	Attrs    []Attr
}

// NewRecord creates a record with the given attributes. Attribute
// order is preserved and is significant for output.
func NewRecord(level Level, location Location, message string, attrs ...Attr) Record {
	return Record{Level: level, Location: location, Message: message, Attrs: attrs}
}

// Add appends an attribute to the record.
func (r *Record) Add(name string, value Value) {
	r.Attrs = append(r.Attrs, Attr{Name: name, Value: value})
}

// AddAttrs appends attributes to the record, preserving order.
func (r *Record) AddAttrs(attrs ...Attr) {
	r.Attrs = append(r.Attrs, attrs...)
}

// CheckFailure creates the record reported for a failed runtime check.
// The failed condition is recorded as the first attribute.
func CheckFailure(location Location, condition string, attrs ...Attr) Record {
	r := NewRecord(ErrorLevel, location, "Check failed.",
		Attr{Name: "condition", Value: StringValue(condition)})
	r.AddAttrs(attrs...)
	return r
}
