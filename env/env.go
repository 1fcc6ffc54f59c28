// Package env ties the process core to an execution engine. An [Environment]
// holds the engine and the [Config] applied to everything it spawns; the
// engine itself (sandbox setup, module instantiation, host calls) lives
// outside this module and is injected as an interface.
package env

import (
	"github.com/wasp-runtime/wasp/message"
	"github.com/wasp-runtime/wasp/proc"
)

// A Unit identifies one sandboxed function to run: a compiled module image
// and the name of the export to invoke.
type Unit struct {
	Module []byte
	Export string
}

// Engine executes sandboxed units. A non-nil error marks a trap; any result
// values stay on the engine's side of the boundary. The mailbox channel
// closes when the process is stopping, which is the engine's cue to wind the
// unit down.
type Engine interface {
	Run(unit Unit, cfg *Config, self proc.ProcessHandle, mailbox <-chan message.Message) error
}

// Environment spawns supervised processes on a shared engine and config.
type Environment struct {
	cfg    *Config
	engine Engine
}

// New creates an Environment. A nil cfg means [DefaultConfig].
func New(cfg *Config, engine Engine) *Environment {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Environment{cfg: cfg, engine: engine}
}

func (e *Environment) Config() *Config {
	return e.cfg
}

// Spawn starts unit as a new process under the environment's config and
// returns its handle.
func (e *Environment) Spawn(unit Unit) proc.ProcessHandle {
	return proc.Spawn(func(self proc.ProcessHandle, mailbox <-chan message.Message) error {
		return e.engine.Run(unit, e.cfg, self, mailbox)
	})
}

// SpawnLink is [Environment.Spawn] with the new process pre-linked to self,
// so self is notified if the unit dies.
func (e *Environment) SpawnLink(self proc.ProcessHandle, unit Unit) proc.ProcessHandle {
	return proc.SpawnLink(self, func(h proc.ProcessHandle, mailbox <-chan message.Message) error {
		return e.engine.Run(unit, e.cfg, h, mailbox)
	})
}
