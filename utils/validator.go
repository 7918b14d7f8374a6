package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/foundanand/trackmygov/models"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed constraint, keyed by the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the enum tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// The registrations cannot fail for these literal tags.
		_ = v.RegisterValidation("issue_category", func(fl validator.FieldLevel) bool {
			return models.IssueCategory(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("issue_status", func(fl validator.FieldLevel) bool {
			return models.IssueStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("note_rating", func(fl validator.FieldLevel) bool {
			return models.NoteRating(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// ValidateStruct checks s against its `validate` tags. A nil result means
// the value passed.
func ValidateStruct(s interface{}) []FieldError {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Msg:   errorMessage(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

func errorMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "issue_category":
		return fmt.Sprintf("%s must be a known issue category", field)
	case "issue_status":
		return fmt.Sprintf("%s must be one of REPORTED, IN_PROGRESS, RESOLVED", field)
	case "note_rating":
		return fmt.Sprintf("%s must be one of HELPFUL, PARTIALLY_HELPFUL, NOT_HELPFUL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
