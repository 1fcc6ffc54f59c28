package env

import (
	"strings"

	"github.com/uberbrodt/fungo/fun"
)

// DefaultMaxMemory is the per-process memory ceiling used by
// [DefaultConfig].
const DefaultMaxMemory uint64 = 0x40000000

// Config carries the static limits an environment imposes on the processes
// it spawns: a memory ceiling, an optional compute-fuel ceiling, and an
// allow-list of host namespace prefixes the computation may call into. The
// process core never inspects a Config; it is handed to the execution engine
// unchanged at spawn time.
type Config struct {
	maxMemory         uint64
	maxFuel           uint32
	hasMaxFuel        bool
	allowedNamespaces []string
}

// NewConfig creates a Config with the given memory ceiling, no fuel ceiling
// and an empty namespace allow-list.
func NewConfig(maxMemory uint64) *Config {
	return &Config{maxMemory: maxMemory}
}

// DefaultConfig allows the runtime's own host namespace and the
// WASI-compatible one, with [DefaultMaxMemory] and unlimited fuel.
func DefaultConfig() *Config {
	return &Config{
		maxMemory: DefaultMaxMemory,
		allowedNamespaces: []string{
			"wasp::",
			"wasi_snapshot_preview1::",
		},
	}
}

func (c *Config) MaxMemory() uint64 {
	return c.maxMemory
}

// MaxFuel returns the compute-fuel ceiling; ok is false when execution is
// not fuel-limited.
func (c *Config) MaxFuel() (fuel uint32, ok bool) {
	return c.maxFuel, c.hasMaxFuel
}

// SetMaxFuel puts a ceiling on compute fuel.
func (c *Config) SetMaxFuel(fuel uint32) {
	c.maxFuel = fuel
	c.hasMaxFuel = true
}

// AllowNamespace adds a host namespace prefix to the allow-list.
func (c *Config) AllowNamespace(namespace string) {
	c.allowedNamespaces = append(c.allowedNamespaces, namespace)
}

// AllowedNamespaces returns the allow-listed prefixes.
func (c *Config) AllowedNamespaces() []string {
	return c.allowedNamespaces
}

// NamespaceAllowed reports whether a fully-qualified host function name
// falls under any allow-listed prefix.
func (c *Config) NamespaceAllowed(name string) bool {
	matches := fun.Filter(c.allowedNamespaces, func(ns string) bool {
		return strings.HasPrefix(name, ns)
	})
	return len(matches) > 0
}
