package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound signals that a record does not exist, or does not exist for the
// requesting user. The two cases are deliberately indistinguishable so that
// record existence is never leaked across ownership boundaries.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidationError carries field-scoped validation failures, serialized to the
// client verbatim as a field -> [messages] mapping.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidation creates a ValidationError with a single field message.
func NewValidation(field, message string) *ValidationError {
	v := &ValidationError{Fields: map[string][]string{}}
	v.Add(field, message)
	return v
}

// Add appends a message for the given field.
func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = map[string][]string{}
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field message has been recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v.Fields[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
