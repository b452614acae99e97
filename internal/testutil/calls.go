// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"slices"
	"sync"
)

// Calls records collaborator calls in the order they happen.
// Fakes sharing one Calls let tests assert ordering across collaborators.
type Calls struct {
	mu   sync.Mutex
	list []string
}

// Record appends a call formatted like fmt.Sprintf.
func (c *Calls) Record(format string, args ...any) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, fmt.Sprintf(format, args...))
}

// List returns a copy of the recorded calls.
func (c *Calls) List() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.list)
}

// Index returns the position of the first call equal to call, or -1.
func (c *Calls) Index(call string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Index(c.list, call)
}
