package concept

// Behavior is an action performed on a payload of type T. The payload is
// passed by value, so a behavior can never modify the copy held by a Model.
// A nil Behavior is valid and means "do nothing".
type Behavior[T any] func(T)

// Strategy is the object form of Behavior, for callers that prefer to keep
// an action as a method on some type.
type Strategy[T any] interface {
	Apply(T)
}

// Model binds one payload value to one behavior and exposes the pair
// through Concept. Neither field can be read back or changed once the
// Model is built.
type Model[T any] struct {
	value    T
	behavior Behavior[T]
}

// New creates a Model owning a copy of value. It never fails; a nil
// behavior produces a Model whose PerformAction is a no-op.
func New[T any](value T, behavior Behavior[T]) Model[T] {
	return Model[T]{
		value:    value,
		behavior: behavior,
	}
}

// FromStrategy creates a Model that calls s.Apply. A nil strategy gives a
// no-op Model, the same as New with a nil Behavior.
func FromStrategy[T any](value T, s Strategy[T]) Model[T] {
	if s == nil {
		return New[T](value, nil)
	}
	return New(value, s.Apply)
}

// PerformAction calls the bound behavior with the payload. Anything the
// behavior does, including panicking, is left to the behavior.
func (m Model[T]) PerformAction() {
	if m.behavior == nil {
		return
	}
	m.behavior(m.value)
}

var _ Concept = Model[struct{}]{}
var _ Concept = (*Model[struct{}])(nil)
var _ Concept = Sequence(nil)
