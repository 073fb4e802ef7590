package generator

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-qrform/pkg/model"
)

// ErrUnknownField is returned when a field identifier does not belong to the
// generator.
var ErrUnknownField = errors.New("generator: unknown field")

// ValidationError reports a rejected field value. Message is meant for end
// users and is shown verbatim.
type ValidationError struct {
	Field   model.FieldID
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field model.FieldID, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
