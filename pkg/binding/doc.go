// Package binding provides observable values that decouple form state from
// whatever draws it. A Field holds one value, exposes Get/Set, and notifies
// subscribers synchronously, on the goroutine that called Set, whenever the
// value actually changes. A Form groups string fields by model.FieldID so a
// single listener can observe every input of a generator.
package binding
