// Package inbox provides the unbounded queue backing process mailboxes and
// signal channels. Senders never block; the memory growth risk is accepted in
// exchange for non-blocking control-plane sends.
package inbox

import "sync"

type Inbox[M any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []M
	closed bool
	done   chan struct{}
	notify chan struct{}
}

// New creates an empty Inbox for messages of type [M]. Any number of
// goroutines may [Inbox.Push] concurrently; consume either with a single
// [Inbox.Chan], or by draining [Inbox.Pop] on every [Inbox.Notify] wakeup.
// Use one consumption style per inbox, not both.
func New[M any]() *Inbox[M] {
	i := &Inbox[M]{
		queue:  make([]M, 0, 8),
		done:   make(chan struct{}),
		notify: make(chan struct{}, 1),
	}
	i.cond = sync.NewCond(&i.mu)
	return i
}

// Push appends msg to the queue. Returns false if the inbox has been closed,
// in which case the message is dropped.
func (i *Inbox[M]) Push(msg M) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return false
	}
	i.queue = append(i.queue, msg)
	i.cond.Broadcast()
	i.nudge()
	return true
}

// Pop removes and returns the head of the queue without blocking. ok is
// false when nothing was returned; closed additionally reports that the
// inbox will never deliver again. Messages accepted before Close remain
// poppable: closure means no more senders, not that accepted messages are
// forfeit, so closed is only reported once the residual queue is drained.
func (i *Inbox[M]) Pop() (msg M, ok bool, closed bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.queue) == 0 {
		return msg, false, i.closed
	}
	msg = i.queue[0]
	i.queue = i.queue[1:]
	return msg, true, false
}

// Notify returns a channel that receives a token after each Push and on
// Close. Tokens coalesce, so a consumer must Pop until empty after each
// wakeup.
func (i *Inbox[M]) Notify() <-chan struct{} {
	return i.notify
}

// nudge wakes a Notify consumer without blocking. Callers hold mu.
func (i *Inbox[M]) nudge() {
	select {
	case i.notify <- struct{}{}:
	default:
	}
}

// popWait blocks until a message is available or the inbox is closed.
// Unlike Pop it stops at closure without draining the residual queue; it
// only feeds Chan, whose reader is on its way out by then.
func (i *Inbox[M]) popWait() (msg M, ok bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for len(i.queue) == 0 && !i.closed {
		i.cond.Wait()
	}
	if i.closed {
		return msg, false
	}
	msg = i.queue[0]
	i.queue = i.queue[1:]
	return msg, true
}

// Chan returns a channel delivering queued messages one at a time, in FIFO
// order. The channel closes when the inbox closes; delivery through it stops
// there even if accepted messages remain, which stay available to Pop. The
// pump goroutine exits on close even if nobody is reading.
func (i *Inbox[M]) Chan() <-chan M {
	c := make(chan M)
	go func() {
		defer close(c)
		for {
			msg, ok := i.popWait()
			if !ok {
				return
			}
			select {
			case c <- msg:
			case <-i.done:
				return
			}
		}
	}()
	return c
}

// Len reports the number of queued messages.
func (i *Inbox[M]) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.queue)
}

// Close stops the inbox accepting new messages: every later Push reports
// false, Chan delivery ends, and Pop reports closure once the messages
// accepted before Close have been drained. Close is idempotent.
func (i *Inbox[M]) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	i.closed = true
	close(i.done)
	i.cond.Broadcast()
	i.nudge()
}
