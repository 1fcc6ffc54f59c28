// Package chronos holds small time helpers used throughout the tests.
package chronos

import "time"

// Dur parses a duration string like "150ms" or "2s", panicking on a bad
// literal. Intended for inline constants in tests and examples, where a parse
// error is a programmer mistake.
func Dur(s string) time.Duration {
	t, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return t
}
