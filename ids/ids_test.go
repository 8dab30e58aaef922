// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"testing"
	"time"
)

func TestGenerator_TimestampDerived(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	g := NewGenerator(func() time.Time { return at })

	if got := g.Next(); got != at.UnixMilli() {
		t.Errorf("Next() = %d, want %d", got, at.UnixMilli())
	}
}

func TestGenerator_StrictlyIncreasing(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return at })

	seen := make(map[int64]bool)
	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("Next() produced duplicate id %d", id)
		}
		if id <= prev {
			t.Fatalf("Next() = %d, not greater than previous %d", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestGenerator_Observe(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return at })

	future := at.Add(time.Hour).UnixMilli()
	g.Observe(future)
	g.Observe(1) // older ids are ignored

	if got := g.Next(); got != future+1 {
		t.Errorf("Next() = %d, want %d", got, future+1)
	}
}

func TestNow_MillisecondPrecision(t *testing.T) {
	now := Now()
	if now.Location() != time.UTC {
		t.Errorf("Now() location = %v, want UTC", now.Location())
	}
	if now.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("Now() has sub-millisecond precision: %v", now)
	}
}
