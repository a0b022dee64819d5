// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickcare/quick-care/models"
	"github.com/quickcare/quick-care/session"
	"github.com/quickcare/quick-care/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	req := testutil.MakeRequest("POST", "/register", models.RegisterRequest{
		Username: "asha",
		Password: "correct horse battery",
	}, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Username != "asha" {
		t.Errorf("username = %q, want %q", resp.Username, "asha")
	}
	if resp.AccountID == 0 {
		t.Error("account_id is zero")
	}

	// Password must be stored hashed, never plaintext
	var storedHash string
	err := db.QueryRow("SELECT password_hash FROM account WHERE username = $1", "asha").Scan(&storedHash)
	if err != nil {
		t.Fatalf("Failed to query account: %v", err)
	}
	if storedHash == "correct horse battery" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	testutil.CreateTestAccount(t, db, "asha", "pw-one")

	req := testutil.MakeRequest("POST", "/register", models.RegisterRequest{
		Username: "asha",
		Password: "pw-two",
	}, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	// Still exactly one row
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM account WHERE username = $1", "asha").Scan(&count); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 1 {
		t.Errorf("account count = %d, want 1", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	tests := []struct {
		name string
		body models.RegisterRequest
	}{
		{"missing username", models.RegisterRequest{Password: "pw"}},
		{"missing password", models.RegisterRequest{Username: "asha"}},
		{"both missing", models.RegisterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/register", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Register(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// No rows created by rejected requests
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM account").Scan(&count); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 0 {
		t.Errorf("account count = %d, want 0", count)
	}
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	testutil.CreateTestAccount(t, db, "asha", "correct horse battery")

	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "asha",
		Password: "correct horse battery",
	}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// Session cookie points at a live server-side session
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a cookie")
	}
	var token string
	for _, c := range cookies {
		if c.Name == session.CookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatalf("no %s cookie set", session.CookieName)
	}

	username, ok := sessions.Get(token)
	if !ok || username != "asha" {
		t.Errorf("session lookup = (%q, %v), want (asha, true)", username, ok)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	testutil.CreateTestAccount(t, db, "asha", "correct horse battery")

	wrongPW := httptest.NewRecorder()
	handler.Login(wrongPW, testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "asha",
		Password: "wrong",
	}, nil))

	noUser := httptest.NewRecorder()
	handler.Login(noUser, testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "nobody",
		Password: "wrong",
	}, nil))

	testutil.AssertStatus(t, wrongPW, http.StatusUnauthorized)
	testutil.AssertStatus(t, noUser, http.StatusUnauthorized)

	// Identical bodies: the response must not reveal whether the account exists
	if wrongPW.Body.String() != noUser.Body.String() {
		t.Errorf("bodies differ:\n wrong password: %s\n unknown user:   %s",
			wrongPW.Body.String(), noUser.Body.String())
	}

	if sessions.Len() != 0 {
		t.Errorf("failed logins created %d sessions", sessions.Len())
	}
}

func TestLogout(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	token := testutil.LoginTestSession(t, sessions, "asha")

	req := testutil.WithSessionCookie(testutil.MakeRequest("POST", "/logout", nil, nil), token)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	if _, ok := sessions.Get(token); ok {
		t.Error("session survived logout")
	}

	// Logout without a cookie is still fine
	w2 := httptest.NewRecorder()
	handler.Logout(w2, testutil.MakeRequest("POST", "/logout", nil, nil))
	testutil.AssertStatus(t, w2, http.StatusNoContent)
}

func TestMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	sessions := session.NewStore(time.Hour)
	handler := NewAccountHandler(db, cfg, sessions)

	token := testutil.LoginTestSession(t, sessions, "asha")

	req := testutil.WithSessionCookie(testutil.MakeRequest("GET", "/me", nil, nil), token)
	w := httptest.NewRecorder()
	handler.Me(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.MeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Username != "asha" {
		t.Errorf("username = %q, want %q", resp.Username, "asha")
	}

	// No cookie -> 401
	w2 := httptest.NewRecorder()
	handler.Me(w2, testutil.MakeRequest("GET", "/me", nil, nil))
	testutil.AssertStatus(t, w2, http.StatusUnauthorized)
}
