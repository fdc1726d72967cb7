package menu

import "sync"

// Observable is a thread-safe broadcaster implementing Subscribable. Worker
// goroutines call Set; subscribers receive the current value synchronously
// on subscription and every subsequent change on the publisher's goroutine.
type Observable[T any] struct {
	mu        sync.Mutex
	current   T
	nextID    int
	callbacks map[int]func(T)
}

// NewObservable creates an Observable seeded with the given value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{current: initial, callbacks: map[int]func(T){}}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Set stores a new value and pushes it to every subscriber.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.current = value
	callbacks := make([]func(T), 0, len(o.callbacks))
	for _, cb := range o.callbacks {
		callbacks = append(callbacks, cb)
	}
	o.mu.Unlock()
	for _, cb := range callbacks {
		cb(value)
	}
}

// Subscribe registers callback and delivers the current value to it before
// returning.
func (o *Observable[T]) Subscribe(callback func(T)) Unsubscribe {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	if o.callbacks == nil {
		o.callbacks = map[int]func(T){}
	}
	o.callbacks[id] = callback
	current := o.current
	o.mu.Unlock()

	callback(current)

	return func() {
		o.mu.Lock()
		delete(o.callbacks, id)
		o.mu.Unlock()
	}
}
