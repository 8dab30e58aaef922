// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Now is the production clock: UTC, truncated to the millisecond so
// timestamps survive an ISO-8601 round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Generator hands out survey ids derived from the creation time in
// milliseconds. Ids are strictly increasing: two ids requested within the
// same millisecond differ by one.
type Generator struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// NewGenerator creates a generator reading the given clock.
// A nil clock means Now.
func NewGenerator(clock Clock) *Generator {
	if clock == nil {
		clock = Now
	}
	return &Generator{clock: clock}
}

// Next returns a fresh id.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id already in use so Next never returns it.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
