package menu

// Unsubscribe detaches a callback previously registered on a dynamic value.
// It is safe to call more than once.
type Unsubscribe func()

// Subscribable is a value that changes over time and pushes every change to
// its subscribers. Implementations must deliver the current value to the
// callback synchronously, exactly once, before Subscribe returns.
type Subscribable[T any] interface {
	Subscribe(callback func(T)) Unsubscribe
}

// SubscribableFunc adapts a plain function to Subscribable. The function
// must honor the synchronous initial delivery contract.
type SubscribableFunc[T any] func(callback func(T)) Unsubscribe

// Subscribe implements Subscribable.
func (f SubscribableFunc[T]) Subscribe(callback func(T)) Unsubscribe {
	return f(callback)
}

type valueKind uint8

const (
	zeroValue valueKind = iota
	staticValue
	computedValue
	streamValue
)

// Value is a menu attribute that is either a literal, a zero-argument
// producer of a literal, or a subscribable stream of literals. The zero
// Value resolves to the zero value of T.
//
// Modelling the three shapes as a tagged variant keeps widget factories and
// other callable literals out of the producer path: a value is only ever
// invoked when it was built with Compute.
type Value[T any] struct {
	kind    valueKind
	literal T
	compute func() T
	stream  Subscribable[T]
}

// Static wraps a literal.
func Static[T any](v T) Value[T] {
	return Value[T]{kind: staticValue, literal: v}
}

// Compute wraps a zero-argument producer, evaluated on every resolution.
func Compute[T any](fn func() T) Value[T] {
	return Value[T]{kind: computedValue, compute: fn}
}

// Watch wraps a subscribable stream.
func Watch[T any](s Subscribable[T]) Value[T] {
	return Value[T]{kind: streamValue, stream: s}
}

// IsZero reports whether the value was never set.
func (v Value[T]) IsZero() bool {
	return v.kind == zeroValue
}

// Literal returns the wrapped literal and true when the value is static.
func (v Value[T]) Literal() (T, bool) {
	if v.kind == staticValue {
		return v.literal, true
	}
	var zero T
	return zero, false
}

// Resolve delivers the current literal to callback exactly once,
// synchronously. For stream values it keeps delivering every future change
// until the returned Unsubscribe is invoked; for the other shapes the
// returned Unsubscribe is a no-op.
func (v Value[T]) Resolve(callback func(T)) Unsubscribe {
	switch v.kind {
	case streamValue:
		return v.stream.Subscribe(callback)
	case computedValue:
		callback(v.compute())
	case staticValue:
		callback(v.literal)
	default:
		var zero T
		callback(zero)
	}
	return func() {}
}

// Peek resolves the value once and returns the synchronously delivered
// literal, detaching immediately. Useful when only a snapshot is needed.
func (v Value[T]) Peek() T {
	var current T
	unsubscribe := v.Resolve(func(value T) { current = value })
	unsubscribe()
	return current
}
