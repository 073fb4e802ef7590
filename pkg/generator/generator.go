package generator

import (
	"github.com/goliatone/go-qrform/pkg/binding"
	"github.com/goliatone/go-qrform/pkg/model"
)

// Generator produces barcode payload text from a bound form.
type Generator interface {
	// Name is the human readable generator title.
	Name() string
	// Text validates every field and serializes the payload.
	Text() (string, error)
	// Validate re-runs the rule for a single field without mutating state.
	Validate(id model.FieldID) error
	// Layout returns the generator's form layout. Repeated calls return the
	// same instance.
	Layout() *model.Layout
	// Focus reports the field that should receive input focus first.
	Focus() model.FieldID
	// Form exposes the bound field values.
	Form() *binding.Form
}

// ChangeListener is notified after a field value changes, with the result of
// validating that field.
type ChangeListener func(id model.FieldID, err error)

// FocusListener is notified when a generator requests focus for a field.
type FocusListener func(id model.FieldID)
