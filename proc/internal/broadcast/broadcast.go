// Package broadcast provides a one-shot latched broadcast: a value published
// exactly once and replayed to every waiter, including waiters that arrive
// after publication. This is the primitive behind the termination verdict.
package broadcast

import "sync"

type Once[T any] struct {
	mu   sync.Mutex
	set  bool
	val  T
	done chan struct{}
}

func NewOnce[T any]() *Once[T] {
	return &Once[T]{done: make(chan struct{})}
}

// Publish sets the value and releases all waiters. Only the first call wins;
// later calls report false and leave the value untouched.
func (o *Once[T]) Publish(v T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.set {
		return false
	}
	o.set = true
	o.val = v
	close(o.done)
	return true
}

// Done returns a channel that is closed once a value has been published.
func (o *Once[T]) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until a value is published and returns it. Safe for any number
// of concurrent and late callers; all observe the same value.
func (o *Once[T]) Wait() T {
	<-o.done
	// val is immutable once done is closed
	return o.val
}

// Value returns the published value without blocking. ok is false if nothing
// has been published yet.
func (o *Once[T]) Value() (v T, ok bool) {
	select {
	case <-o.done:
		return o.val, true
	default:
		return v, false
	}
}
