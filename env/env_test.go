package env

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/wasp-runtime/wasp/chronos"
	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc"
)

// fakeEngine dispatches on the unit's export name and records what it was
// handed, so tests can check the config pass-through.
type fakeEngine struct {
	mu      sync.Mutex
	gotCfg  *Config
	gotUnit Unit
}

func (f *fakeEngine) Run(unit Unit, cfg *Config, self proc.ProcessHandle, mailbox <-chan message.Message) error {
	f.mu.Lock()
	f.gotCfg = cfg
	f.gotUnit = unit
	f.mu.Unlock()

	switch unit.Export {
	case "ok":
		return nil
	case "boom":
		return errors.New("unit trapped")
	default:
		// run until the process is told to stop
		for range mailbox {
		}
		return nil
	}
}

func joinWithin(t *testing.T, h proc.ProcessHandle, d time.Duration) bool {
	t.Helper()
	select {
	case <-h.Done():
		return h.Join()
	case <-time.After(d):
		t.Fatalf("timed out after %s waiting on %v", d, h)
		return false
	}
}

func Test_Environment_SpawnPassesConfigThrough(t *testing.T) {
	cfg := NewConfig(1 << 20)
	eng := &fakeEngine{}
	e := New(cfg, eng)

	unit := Unit{Module: []byte{0x00, 0x61, 0x73, 0x6d}, Export: "ok"}
	h := e.Spawn(unit)

	assert.Equal(t, joinWithin(t, h, chronos.Dur("5s")), false)
	assert.Equal(t, eng.gotCfg, cfg)
	assert.Equal(t, eng.gotUnit.Export, "ok")
}

func Test_Environment_NilConfigGetsDefaults(t *testing.T) {
	eng := &fakeEngine{}
	e := New(nil, eng)

	h := e.Spawn(Unit{Export: "ok"})

	joinWithin(t, h, chronos.Dur("5s"))
	assert.Equal(t, eng.gotCfg.MaxMemory(), DefaultMaxMemory)
}

func Test_Environment_TrappedUnitIsAbnormal(t *testing.T) {
	e := New(nil, &fakeEngine{})

	h := e.Spawn(Unit{Export: "boom"})

	assert.Equal(t, joinWithin(t, h, chronos.Dur("5s")), true)
}

func Test_Environment_SpawnLinkCascades(t *testing.T) {
	e := New(nil, &fakeEngine{})

	parent := e.Spawn(Unit{Export: "serve"})
	child := e.SpawnLink(parent, Unit{Export: "boom"})

	assert.Equal(t, joinWithin(t, child, chronos.Dur("5s")), true)
	// the trap reached the parent through the pre-established link
	assert.Equal(t, joinWithin(t, parent, chronos.Dur("5s")), true)
}

func Test_Environment_KilledUnit(t *testing.T) {
	e := New(nil, &fakeEngine{})

	h := e.Spawn(Unit{Export: "serve"})
	assert.NilError(t, h.SendSignal(proc.Kill{}))

	assert.Equal(t, joinWithin(t, h, chronos.Dur("5s")), true)
}
