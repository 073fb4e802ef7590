package render

import (
	"sort"

	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
)

// RenderOptions describe per-request data that renderers can use to prefill
// inputs or show validation feedback without touching the generator's layout.
type RenderOptions struct {
	// Values pre-populates inputs keyed by field identifier. Interactive
	// renderers write them into the generator before the first prompt.
	Values map[model.FieldID]string
	// Errors surfaces validation feedback keyed by field identifier.
	Errors map[model.FieldID][]string
	// FormErrors holds messages that are not tied to a single input.
	FormErrors []string
}

// Prefill writes every known value of opts into gen. Unknown identifiers are
// reported as form-level errors on the returned options.
func Prefill(gen generator.Generator, opts RenderOptions) RenderOptions {
	if gen == nil || len(opts.Values) == 0 {
		return opts
	}
	form := gen.Form()
	for _, id := range form.IDs() {
		value, ok := opts.Values[id]
		if !ok {
			continue
		}
		_ = form.Set(id, value)
	}
	unknown := make([]string, 0)
	for id := range opts.Values {
		if _, ok := form.Field(id); !ok {
			unknown = append(unknown, "unknown field "+string(id))
		}
	}
	sort.Strings(unknown)
	opts.FormErrors = MergeFormErrors(opts.FormErrors, unknown...)
	return opts
}
