// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the durable key-value storage behind the survey
repository.

# Store Interface

	type Store interface {
		Get(key string) ([]byte, bool, error)
		Set(key string, value []byte) error
		Delete(key string) error
	}

A missing key is reported as ok=false, never as an error.

# Implementations

  - MemoryStore: process memory; SetQuota and SetUnavailable simulate a
    full or disabled browser store (ErrQuotaExceeded, ErrUnavailable)
  - SQLStore: one row per key in the kv_store table, sqlite or postgres

# Database Setup

	db, err := storage.Open(storage.TypeSQLite, "roi-surveys.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := storage.CreateSchema(db); err != nil {
		log.Fatal(err)
	}
	store := storage.NewSQLStore(db)

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Table

	kv_store (
	    storage_key TEXT PRIMARY KEY,
	    payload     TEXT NOT NULL,
	    updated_at  TIMESTAMP NOT NULL
	)

Writes are upserts (ON CONFLICT DO UPDATE), supported by both engines.
*/
package storage
