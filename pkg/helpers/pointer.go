package helpers

import "strings"

// Ptr returns a pointer to the provided value.
func Ptr[T any](val T) *T {
	return &val
}

// Value returns the dereferenced value or the zero value if nil.
func Value[T any](val *T) T {
	if val == nil {
		var zero T
		return zero
	}
	return *val
}

// OptionalString maps an absent or empty wire string to nil.
func OptionalString(val *string) *string {
	if val == nil || *val == "" {
		return nil
	}
	return Ptr(*val)
}

// Present reports whether an optional string holds something other than
// whitespace. Absent and blank values are treated the same way.
func Present(val *string) bool {
	return val != nil && strings.TrimSpace(*val) != ""
}
