package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports an absent entity, distinct from transport failures.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable reports that the persistence layer is unreachable.
	ErrUnavailable = errors.New("storage unavailable")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError itemizes every violated field so the route layer can
// return them all in one 400 body.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
