package matching

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a request rejected before any scoring work: an unknown subscription tier,
// an outcome outside the vocabulary, or an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError reports a reference to an unknown record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// fromValidator converts a validator failure into a ValidationError naming the first failing field.
func fromValidator(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
	return &ValidationError{Message: err.Error()}
}
