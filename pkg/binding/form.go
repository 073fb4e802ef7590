package binding

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-qrform/pkg/model"
)

// FieldChangeFunc observes a change on any field of a Form.
type FieldChangeFunc func(id model.FieldID, old, new string)

// Form is an ordered set of string fields keyed by identifier.
type Form struct {
	mu        sync.RWMutex
	order     []model.FieldID
	fields    map[model.FieldID]Field[string]
	nextID    uint64
	listeners []formListener
}

type formListener struct {
	id uint64
	fn FieldChangeFunc
}

// NewForm creates one empty string Value per identifier, keeping order.
func NewForm(ids ...model.FieldID) *Form {
	f := &Form{
		fields: make(map[model.FieldID]Field[string], len(ids)),
	}
	for _, id := range ids {
		if _, exists := f.fields[id]; exists {
			continue
		}
		f.bind(id, NewValue(""))
	}
	return f
}

func (f *Form) bind(id model.FieldID, field Field[string]) {
	f.order = append(f.order, id)
	f.fields[id] = field
	field.OnChange(func(old, new string) {
		f.mu.RLock()
		snapshot := make([]formListener, len(f.listeners))
		copy(snapshot, f.listeners)
		f.mu.RUnlock()
		for _, l := range snapshot {
			l.fn(id, old, new)
		}
	})
}

// Field returns the bound field for id.
func (f *Form) Field(id model.FieldID) (Field[string], bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	field, ok := f.fields[id]
	return field, ok
}

// Get returns the value for id, or "" when id is unknown.
func (f *Form) Get(id model.FieldID) string {
	field, ok := f.Field(id)
	if !ok {
		return ""
	}
	return field.Get()
}

// Set writes value into the field for id.
func (f *Form) Set(id model.FieldID, value string) error {
	field, ok := f.Field(id)
	if !ok {
		return fmt.Errorf("binding: unknown field %q", id)
	}
	field.Set(value)
	return nil
}

// IDs returns the identifiers in declaration order.
func (f *Form) IDs() []model.FieldID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]model.FieldID(nil), f.order...)
}

// Values snapshots every field.
func (f *Form) Values() map[model.FieldID]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[model.FieldID]string, len(f.fields))
	for id, field := range f.fields {
		out[id] = field.Get()
	}
	return out
}

// OnFieldChange registers fn for changes on every field of the form.
func (f *Form) OnFieldChange(fn FieldChangeFunc) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, formListener{id: id, fn: fn})
	f.mu.Unlock()

	return &Subscription{cancel: func() { f.removeListener(id) }}
}

func (f *Form) removeListener(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.listeners {
		if l.id == id {
			f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
			return
		}
	}
}
