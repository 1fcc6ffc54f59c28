package proc

import (
	"github.com/rs/xid"

	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc/internal/broadcast"
	"github.com/wasp-runtime/wasp/proc/internal/inbox"
)

// A Computation is the unit of work a process supervises. It receives the
// handle of its own process and the read side of its mailbox. The mailbox
// channel closes when the process terminates; an abandoned computation should
// treat that as its cue to return, but whatever it returns at that point is
// no longer observed.
//
// Returning a non-nil error is a trap and counts as abnormal termination.
type Computation func(self ProcessHandle, mailbox <-chan message.Message) error

// Spawn starts c as a new process and returns its handle. The process runs
// in the background until c returns or a [Kill] signal arrives; it is not
// tied to the caller in any way and dropping the handle does not stop it.
func Spawn(c Computation) ProcessHandle {
	signals := inbox.New[Signal]()
	mailbox := inbox.New[message.Message]()
	verdict := broadcast.NewOnce[bool]()
	self := NewHandle(xid.New(), signals, mailbox, verdict)

	msgs := mailbox.Chan()
	Run(func() error { return c(self, msgs) }, mailbox, verdict, signals)
	return self
}

// SpawnLink starts c as a new process already linked to self: the new
// process is told to notify self when it dies, before it had any chance to
// terminate. The reverse direction is up to the caller, links being
// directional.
func SpawnLink(self ProcessHandle, c Computation) ProcessHandle {
	signals := inbox.New[Signal]()
	mailbox := inbox.New[message.Message]()
	verdict := broadcast.NewOnce[bool]()
	h := NewHandle(xid.New(), signals, mailbox, verdict)

	// enqueued before the driver starts, so it precedes any termination
	signals.Push(Link{Handle: self})

	msgs := mailbox.Chan()
	Run(func() error { return c(h, msgs) }, mailbox, verdict, signals)
	return h
}
