package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
)

// ErrorMapping splits an error into field-level and form-level messages keyed
// the same way RenderOptions.Errors is.
type ErrorMapping struct {
	Fields map[model.FieldID][]string
	Form   []string
}

// Apply merges the mapping into opts and returns the result.
func (m ErrorMapping) Apply(opts RenderOptions) RenderOptions {
	if len(m.Fields) > 0 {
		merged := make(map[model.FieldID][]string, len(opts.Errors)+len(m.Fields))
		for id, messages := range opts.Errors {
			merged[id] = append([]string(nil), messages...)
		}
		for id, messages := range m.Fields {
			merged[id] = normalizeMessages(append(merged[id], messages...))
		}
		opts.Errors = merged
	}
	opts.FormErrors = MergeFormErrors(opts.FormErrors, m.Form...)
	return opts
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapValidationError routes err to the field it names when the layout has
// that field. Any other error, including validation errors for fields the
// layout does not show, becomes a form-level message so it is not lost.
func MapValidationError(layout *model.Layout, err error) ErrorMapping {
	var mapping ErrorMapping
	if err == nil {
		return mapping
	}

	var verr *generator.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		if _, ok := layout.Field(verr.Field); ok {
			mapping.Fields = map[model.FieldID][]string{
				verr.Field: normalizeMessages([]string{verr.Message}),
			}
			return mapping
		}
		mapping.Form = normalizeMessages([]string{verr.Message})
		return mapping
	}

	mapping.Form = normalizeMessages([]string{err.Error()})
	return mapping
}

// ValidateAll runs the generator's single-field validation for every row of
// its layout and collects the failures. Unlike Text it does not stop at the
// first error, so a form can highlight every bad input at once.
func ValidateAll(gen generator.Generator) ErrorMapping {
	var mapping ErrorMapping
	if gen == nil {
		return mapping
	}
	layout := gen.Layout()
	for _, id := range layout.IDs() {
		if err := gen.Validate(id); err != nil {
			next := MapValidationError(layout, err)
			for fid, messages := range next.Fields {
				if mapping.Fields == nil {
					mapping.Fields = make(map[model.FieldID][]string)
				}
				mapping.Fields[fid] = append(mapping.Fields[fid], messages...)
			}
			mapping.Form = MergeFormErrors(mapping.Form, next.Form...)
		}
	}
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
