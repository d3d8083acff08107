// Package iox provides I/O helpers for resource cleanup.
package iox

import "io"

// DiscardClose closes c and discards the error.
// Use in defer statements where close errors are unactionable, such as
// read-only jar archives:
//
//	defer iox.DiscardClose(r)
func DiscardClose(c io.Closer) { _ = c.Close() }

// CloseFunc returns a cleanup function that closes c.
// Designed for t.Cleanup registration:
//
//	t.Cleanup(iox.CloseFunc(f))
func CloseFunc(c io.Closer) func() {
	return func() { _ = c.Close() }
}
