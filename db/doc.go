// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access, schema creation, and driver-level
error classification.

# Backends

Two backends are supported, selected by configuration:

  - postgres (lib/pq)
  - sqlite (modernc.org/sqlite, pure Go)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Both drivers accept $1-style placeholders, so handler SQL is written once.

# Schema Creation

CreateSchema initializes all required tables for the given backend:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - account: one row per registered user; username is unique
  - contact: one row per emergency contact; mobile, vehicle, and
    lookup_key are each unique

Neither table has an update or delete path.

# Uniqueness Violations

IsUniqueViolation classifies a driver error as a uniqueness constraint
violation:

	if db.IsUniqueViolation(err) { ... }

Handlers insert first and classify the failure; there is no pre-check, so
concurrent duplicate inserts are resolved by the database itself.
*/
package db
