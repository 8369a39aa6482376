package logger

import "github.com/depp/later-darker/core"

// Attr helper functions for convenience

// String creates a string attribute.
func String(name, value string) core.Attr {
	return core.Attr{Name: name, Value: core.StringValue(value)}
}

// Int creates an int attribute.
func Int(name string, value int) core.Attr {
	return core.Attr{Name: name, Value: core.Int64Value(int64(value))}
}

// Int64 creates an int64 attribute.
func Int64(name string, value int64) core.Attr {
	return core.Attr{Name: name, Value: core.Int64Value(value)}
}

// Uint64 creates a uint64 attribute.
func Uint64(name string, value uint64) core.Attr {
	return core.Attr{Name: name, Value: core.Uint64Value(value)}
}

// Float64 creates a float64 attribute.
func Float64(name string, value float64) core.Attr {
	return core.Attr{Name: name, Value: core.Float64Value(value)}
}

// Bool creates a bool attribute.
func Bool(name string, value bool) core.Attr {
	return core.Attr{Name: name, Value: core.BoolValue(value)}
}

// Wide creates an attribute viewing a UTF-16 string. The slice must
// outlive the log call; see core.Value.
func Wide(name string, value []uint16) core.Attr {
	return core.Attr{Name: name, Value: core.WideValue(value)}
}

// Null creates a null attribute.
func Null(name string) core.Attr {
	return core.Attr{Name: name, Value: core.Null()}
}

// Err creates an "error" attribute from an error value.
func Err(err error) core.Attr {
	if err == nil {
		return core.Attr{Name: "error", Value: core.Null()}
	}
	return core.Attr{Name: "error", Value: core.StringValue(err.Error())}
}
