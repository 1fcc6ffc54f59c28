package proc

import (
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc/internal/broadcast"
	"github.com/wasp-runtime/wasp/proc/internal/inbox"
)

// finished classifies why a driver loop stopped.
type finished struct {
	// the process was told to stop, directly or by a cascading link death
	killed bool
	// non-nil when the computation trapped
	err error
}

// process owns one running computation end-to-end: the link set, the
// die-when-link-dies flag and the verdict emission. All fields are mutated
// only from run, sequentially; there is no locking in the loop.
type process struct {
	fut             func() error
	mailbox         *inbox.Inbox[message.Message]
	verdict         *broadcast.Once[bool]
	signals         *inbox.Inbox[Signal]
	links           []ProcessHandle
	dieWhenLinkDies bool
}

// Run turns fut into a supervised process. The driver loop races fut against
// the signal channel, preferring signals, and on termination notifies linked
// processes and publishes the verdict exactly once. It runs detached; the
// returned channel closes when the loop has fully exited. The only ways to
// stop the loop are fut returning or a [Kill] signal (direct or cascaded).
//
// This is the raw spawn contract: the caller provides the mailbox the
// process will use for signal-derived markers, the verdict latch shared with
// its handles, and the receive side of the signal channel. Most callers want
// [Spawn] instead.
func Run(fut func() error, mailbox *inbox.Inbox[message.Message], verdict *broadcast.Once[bool], signals *inbox.Inbox[Signal]) <-chan struct{} {
	p := &process{
		fut:             fut,
		mailbox:         mailbox,
		verdict:         verdict,
		signals:         signals,
		dieWhenLinkDies: true,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.run()
	}()
	return done
}

func (p *process) run() {
	// The computation runs in its own goroutine so the loop can keep
	// handling signals while it executes. The channel is buffered: after a
	// kill the loop never reads it again and the goroutine must still be
	// able to finish.
	outcome := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				outcome <- fmt.Errorf("computation panicked: %v, stack: %s", r, debug.Stack())
			}
		}()
		outcome <- p.fut()
	}()

	notify := p.signals.Notify()
	var result finished
loop:
	for {
		// Signals strictly first: every queued signal is handled before the
		// computation is observed again, so a kill is never starved by a
		// runaway computation.
		for notify != nil {
			sig, ok, closed := p.signals.Pop()
			if closed {
				// no more signal senders; not a reason to terminate
				notify = nil
				break
			}
			if !ok {
				break
			}
			if stop, res := p.handle(sig); stop {
				result = res
				break loop
			}
		}

		select {
		case <-notify:
			// drain again; nil once the signal channel closed
		case err := <-outcome:
			result = finished{err: err}
			break loop
		}
	}

	p.exit(result)
}

// handle applies a single signal. stop reports that the loop must terminate
// with res, without observing the computation again.
func (p *process) handle(sig Signal) (stop bool, res finished) {
	DebugPrintf("process received %s signal", sig.SignalName())
	switch s := sig.(type) {
	case Kill:
		return true, finished{killed: true}
	case DieWhenLinkDies:
		p.dieWhenLinkDies = s.Die
	case Link:
		if !slices.ContainsFunc(p.links, s.Handle.Equals) {
			p.links = append(p.links, s.Handle)
		}
	case LinkNotifyTrap, LinkNotifyKill:
		if p.dieWhenLinkDies {
			// the link's death was not a kill signal, but it has the same
			// effect on this process and is propagated downstream as one
			return true, finished{killed: true}
		}
		p.mailbox.Push(message.LinkDown{})
	}
	return false, finished{}
}

// exit performs the one-time termination fanout: link notifications, channel
// teardown, then the verdict. Sends to already-dead links are ignored; their
// teardown is independent of ours.
func (p *process) exit(res finished) {
	switch {
	case res.killed:
		DebugPrintf("process was killed")
		for _, peer := range p.links {
			_ = peer.SendSignal(LinkNotifyKill{})
		}
	case res.err != nil:
		DebugPrintf("process failed: %v", res.err)
		for _, peer := range p.links {
			_ = peer.SendSignal(LinkNotifyTrap{})
		}
	}

	// Tear down the channels before the verdict goes out, so that once a
	// Join resolves every SendMessage/SendSignal reliably reports ErrNoProc.
	// Closing the mailbox is also the stop hint for an abandoned computation
	// still reading it.
	p.signals.Close()
	p.mailbox.Close()

	p.verdict.Publish(res.killed || res.err != nil)
}
