// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates survey record identifiers and timestamps.

# Survey IDs

Ids are integers derived from the creation time in Unix milliseconds:

	gen := ids.NewGenerator(ids.Now)
	id := gen.Next()

Two ids requested in the same millisecond would collide, so the generator
never returns an id less than or equal to the last one it handed out.
Ids loaded from storage are registered with Observe.

# Timestamps

Now returns UTC time truncated to milliseconds, matching the precision of
the ISO-8601 strings in the storage blob.
*/
package ids
