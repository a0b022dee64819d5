// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quickcare/quick-care/auth"
	"github.com/quickcare/quick-care/cliparse"
	"github.com/quickcare/quick-care/db"
	"github.com/quickcare/quick-care/models"
	"github.com/quickcare/quick-care/session"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every statement sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, models.BackendSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. QR images go to a
// per-test temp dir.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: models.BackendSQLite,
		BaseURL:      "http://localhost:5000",
		QRDir:        t.TempDir(),
	}
}

// CreateTestAccount inserts an account and returns its ID
func CreateTestAccount(t *testing.T, conn *sql.DB, username, password string) int64 {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO account (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, hash, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return id
}

// CreateTestContact inserts a contact row and returns its ID and lookup key
func CreateTestContact(t *testing.T, conn *sql.DB, name, mobile, vehicle string) (int64, string) {
	t.Helper()

	key, err := auth.GenerateLookupKey()
	if err != nil {
		t.Fatalf("Failed to generate lookup key: %v", err)
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO contact (full_name, mobile, vehicle, lookup_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, name, mobile, vehicle, key, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}

	return id, key
}

// LoginTestSession creates a session for username and returns the token
func LoginTestSession(t *testing.T, sessions *session.Store, username string) string {
	t.Helper()

	token, err := sessions.Create(username)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithSessionCookie attaches a session cookie to the request
func WithSessionCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
