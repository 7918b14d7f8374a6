package services

import (
	"errors"
	"strings"

	"github.com/foundanand/trackmygov/utils"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrReferentialIntegrity = errors.New("referenced issue does not exist")
)

// ValidationError lists every field that failed its constraint.
type ValidationError struct {
	Fields []utils.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func validate(in interface{}) error {
	if fields := utils.ValidateStruct(in); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func invalidField(field, msg string) error {
	return &ValidationError{Fields: []utils.FieldError{{Field: field, Msg: msg}}}
}
