package proc

import (
	"errors"
	"testing"
	"time"

	"github.com/wasp-runtime/wasp/message"
)

var errBoom = errors.New("boom")

// drain runs until its mailbox closes, then exits normally. Spawned as a
// stand-in for a well-behaved long-running computation.
func drain(_ ProcessHandle, mailbox <-chan message.Message) error {
	for range mailbox {
	}
	return nil
}

// blockedOn ignores the mailbox and returns result once release is closed.
func blockedOn(release <-chan struct{}, result error) Computation {
	return func(_ ProcessHandle, _ <-chan message.Message) error {
		<-release
		return result
	}
}

// joinWithin waits on h up to d and returns the verdict, failing the test on
// timeout.
func joinWithin(t *testing.T, h ProcessHandle, d time.Duration) bool {
	t.Helper()
	select {
	case <-h.Done():
		return h.Join()
	case <-time.After(d):
		t.Fatalf("timed out after %s waiting on %v", d, h)
		return false
	}
}

// assertStillRunning fails the test if h terminates within d.
func assertStillRunning(t *testing.T, h ProcessHandle, d time.Duration) {
	t.Helper()
	select {
	case <-h.Done():
		t.Fatalf("%v terminated but should still be running", h)
	case <-time.After(d):
	}
}
