// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/quickcare/quick-care/auth"
	"github.com/quickcare/quick-care/cliparse"
	"github.com/quickcare/quick-care/db"
	"github.com/quickcare/quick-care/middleware"
	"github.com/quickcare/quick-care/models"
	"github.com/quickcare/quick-care/session"
)

type AccountHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
}

func NewAccountHandler(conn *sql.DB, cfg cliparse.Config, sessions *session.Store) *AccountHandler {
	return &AccountHandler{db: conn, cfg: cfg, sessions: sessions}
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	// Insert and let the unique constraint decide; no pre-check, so two
	// concurrent registrations of the same name cannot both succeed.
	var accountID int64
	err = h.db.QueryRow(`
		INSERT INTO account (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Username, hash, time.Now()).Scan(&accountID)

	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("account registered", "account_id", accountID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		AccountID: accountID,
		Username:  req.Username,
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var hash string
	err := h.db.QueryRow(`
		SELECT password_hash FROM account WHERE username = $1
	`, req.Username).Scan(&hash)

	if err == sql.ErrNoRows {
		// Same response and similar timing as a wrong password
		auth.VerifyDummy(req.Password)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.VerifyPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.sessions.Create(req.Username)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	session.SetCookie(w, token, session.DefaultTTL)

	slog.Info("login", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Username: req.Username,
	})
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := session.FromRequest(r); token != "" {
		h.sessions.Destroy(token)
	}
	session.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := h.sessions.Get(session.FromRequest(r))
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		Username: username,
	})
}
