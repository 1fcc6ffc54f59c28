package proc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/xid"
	"gotest.tools/v3/assert"

	"github.com/wasp-runtime/wasp/chronos"
	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc/internal/broadcast"
	"github.com/wasp-runtime/wasp/proc/internal/inbox"
)

// handles compare by identity only, whatever the state of their channels
var handleByID = cmp.Comparer(func(a, b ProcessHandle) bool {
	return a.Equals(b)
})

func Test_Handle_IdentityEquality(t *testing.T) {
	id := xid.New()

	// same identity, independent channel sets
	a := NewHandle(id, inbox.New[Signal](), inbox.New[message.Message](), broadcast.NewOnce[bool]())
	b := NewHandle(id, inbox.New[Signal](), inbox.New[message.Message](), broadcast.NewOnce[bool]())
	c := NewHandle(xid.New(), inbox.New[Signal](), inbox.New[message.Message](), broadcast.NewOnce[bool]())

	assert.Assert(t, a.Equals(b))
	assert.Assert(t, cmp.Equal(a, b, handleByID))
	assert.Assert(t, !a.Equals(c))

	// identity works for set membership
	set := map[xid.ID]ProcessHandle{}
	set[a.ID()] = a
	set[b.ID()] = b
	set[c.ID()] = c
	assert.Equal(t, len(set), 2)
}

func Test_Handle_String(t *testing.T) {
	h := Spawn(drain)
	defer func() {
		_ = h.SendSignal(Kill{})
	}()

	assert.Assert(t, strings.HasPrefix(h.String(), "Process<"))
	assert.Assert(t, strings.Contains(h.String(), h.ID().String()))
}

func Test_Handle_CopiesShareVerdict(t *testing.T) {
	h := Spawn(func(_ ProcessHandle, _ <-chan message.Message) error {
		return nil
	})
	clone := h

	assert.Equal(t, joinWithin(t, h, chronos.Dur("5s")), false)
	// termination long decided; the copy resolves immediately
	assert.Equal(t, clone.Join(), false)
	assert.Equal(t, clone.Join(), false)
}
