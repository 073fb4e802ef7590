package binding

import "sync"

// ChangeFunc receives the previous and the new value of a field.
type ChangeFunc[T any] func(old, new T)

// Field is a bindable value with change notification.
type Field[T comparable] interface {
	Get() T
	Set(value T)
	OnChange(fn ChangeFunc[T]) *Subscription
}

// Subscription detaches a listener when cancelled.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel removes the listener. Calling it more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

type listener[T any] struct {
	id uint64
	fn ChangeFunc[T]
}

// Value is the in-memory Field implementation.
type Value[T comparable] struct {
	mu        sync.RWMutex
	value     T
	nextID    uint64
	listeners []listener[T]
}

var _ Field[string] = (*Value[string])(nil)

// NewValue returns a field seeded with initial. Seeding does not notify.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies listeners in registration order when it
// differs from the current value. Listeners run after the lock is released so
// they may read or write the field.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	old := v.value
	if old == value {
		v.mu.Unlock()
		return
	}
	v.value = value
	snapshot := make([]listener[T], len(v.listeners))
	copy(snapshot, v.listeners)
	v.mu.Unlock()

	for _, l := range snapshot {
		l.fn(old, value)
	}
}

// OnChange registers fn. A nil fn yields a subscription that does nothing.
func (v *Value[T]) OnChange(fn ChangeFunc[T]) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, listener[T]{id: id, fn: fn})
	v.mu.Unlock()

	return &Subscription{cancel: func() { v.remove(id) }}
}

func (v *Value[T]) remove(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, l := range v.listeners {
		if l.id == id {
			v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
			return
		}
	}
}
