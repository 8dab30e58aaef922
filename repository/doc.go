// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package repository holds the collection of saved surveys and writes it
// through to a storage.Store as one JSON array under a single key.
//
// Malformed or unreadable data at startup yields an empty collection
// rather than an error. A failed write leaves the in-memory collection
// updated and is reported to the caller.
package repository
