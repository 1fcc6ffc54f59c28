package proc

import (
	"errors"
	"fmt"

	"github.com/rs/xid"

	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc/internal/broadcast"
	"github.com/wasp-runtime/wasp/proc/internal/inbox"
)

// ErrNoProc reports that the target process has already exited and torn down
// its receiving channels. Wrapped by the errors returned from
// [ProcessHandle.SendMessage] and [ProcessHandle.SendSignal].
var ErrNoProc = errors.New("no such process")

// ProcessHandle is the only way of communicating with a process once it is
// spawned. Handles are plain values: copy them freely, every copy refers to
// the same process and shares its channel endpoints and verdict latch.
// Dropping all handles does not stop the process.
//
// Equality is identity based: two handles are interchangeable whenever
// [ProcessHandle.ID] matches, regardless of the liveness of the channels
// behind them.
type ProcessHandle struct {
	id      xid.ID
	signals *inbox.Inbox[Signal]
	mailbox *inbox.Inbox[message.Message]
	verdict *broadcast.Once[bool]
}

// NewHandle pairs an identity with the channel set of a driver loop. Used by
// [Spawn]; call it directly only when wiring the spawn contract by hand with
// [Run].
func NewHandle(id xid.ID, signals *inbox.Inbox[Signal], mailbox *inbox.Inbox[message.Message], verdict *broadcast.Once[bool]) ProcessHandle {
	return ProcessHandle{
		id:      id,
		signals: signals,
		mailbox: mailbox,
		verdict: verdict,
	}
}

// ID returns the process identity assigned at spawn time.
func (h ProcessHandle) ID() xid.ID {
	return h.id
}

func (h ProcessHandle) String() string {
	return fmt.Sprintf("Process<%s>", h.id)
}

// Equals reports whether both handles refer to the same process.
func (h ProcessHandle) Equals(other ProcessHandle) bool {
	return h.id == other.id
}

// SendMessage enqueues an application message on the process mailbox. It
// never blocks; the mailbox is unbounded. Returns an error wrapping
// [ErrNoProc] once the process has exited.
func (h ProcessHandle) SendMessage(msg message.Message) error {
	if !h.mailbox.Push(msg) {
		return fmt.Errorf("send message to %v: %w", h, ErrNoProc)
	}
	return nil
}

// SendSignal enqueues a control signal. Same non-blocking contract and
// failure mode as [ProcessHandle.SendMessage]. Signals are handled in send
// order and ahead of computation progress.
func (h ProcessHandle) SendSignal(sig Signal) error {
	if !h.signals.Push(sig) {
		return fmt.Errorf("send %s signal to %v: %w", sig.SignalName(), h, ErrNoProc)
	}
	return nil
}

// Join blocks until the process terminates and returns the verdict:
//   - false if the computation finished normally
//   - true if it trapped or the process was killed
//
// Join resolves immediately once the process has terminated and may be called
// any number of times, from any number of handle copies; every caller sees
// the same verdict.
func (h ProcessHandle) Join() bool {
	return h.verdict.Wait()
}

// Done returns a channel that is closed when the process terminates, for
// callers that want to select on termination rather than block in
// [ProcessHandle.Join].
func (h ProcessHandle) Done() <-chan struct{} {
	return h.verdict.Done()
}
