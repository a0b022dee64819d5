// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/quickcare/quick-care/models"
)

// Open opens a database handle for the configured backend.
// The caller owns the handle and must Close it.
func Open(backend, url string) (*sql.DB, error) {
	switch backend {
	case models.BackendPostgres:
		return sql.Open("postgres", url)
	case models.BackendSQLite:
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unknown database backend %q", backend)
	}
}

// IsUniqueViolation reports whether err is a uniqueness constraint violation
// from either supported driver. Duplicate detection relies on this rather
// than a SELECT-before-INSERT pre-check, so two concurrent inserts of the
// same mobile or vehicle race inside the database and exactly one wins.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}
