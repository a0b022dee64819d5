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
	"github.com/quickcare/quick-care/qr"
	"github.com/quickcare/quick-care/session"
)

type ContactHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
}

func NewContactHandler(conn *sql.DB, cfg cliparse.Config, sessions *session.Store) *ContactHandler {
	return &ContactHandler{db: conn, cfg: cfg, sessions: sessions}
}

// Create handles POST /contacts
// Requires a logged-in session. Inserts the contact record, generates its
// QR artifact, and returns the lookup key and image name.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	username, ok := h.sessions.Get(session.FromRequest(r))
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	var req models.CreateContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.FullName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "full_name is required")
		return
	}
	if req.Mobile == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mobile is required")
		return
	}
	if req.Vehicle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vehicle is required")
		return
	}

	lookupKey, err := auth.GenerateLookupKey()
	if err != nil {
		slog.Error("failed to generate lookup key", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	// Begin transaction; the row commits only after the QR image exists,
	// so a failed artifact write leaves no record behind.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var contactID int64
	err = tx.QueryRow(`
		INSERT INTO contact (full_name, mobile, vehicle, lookup_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.FullName, req.Mobile, req.Vehicle, lookupKey, time.Now()).Scan(&contactID)

	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Mobile number or vehicle number already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert contact", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	payload := qr.BuildPayload(h.cfg.BaseURL, lookupKey)
	imageName, err := qr.Generate(payload, h.cfg.QRDir)
	if err != nil {
		slog.Error("failed to generate QR image", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	slog.Info("contact created",
		"contact_id", contactID,
		"created_by", username,
		"qr_image", imageName,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateContactResponse{
		ContactID: contactID,
		LookupKey: lookupKey,
		InfoURL:   payload,
		QRImage:   imageName,
	})
}

// EmergencyInfo handles GET /emergency-info/{key}
// Public: this is the endpoint a scanned QR code resolves to.
func (h *ContactHandler) EmergencyInfo(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lookup key is required")
		return
	}

	var contact models.Contact
	err := h.db.QueryRow(`
		SELECT id, full_name, mobile, vehicle, lookup_key
		FROM contact
		WHERE lookup_key = $1
	`, key).Scan(
		&contact.ID, &contact.FullName, &contact.Mobile,
		&contact.Vehicle, &contact.LookupKey,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No contact found for this code")
		return
	}
	if err != nil {
		slog.Error("failed to query contact", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EmergencyInfoResponse{
		Name:    contact.FullName,
		Mobile:  contact.Mobile,
		Vehicle: contact.Vehicle,
	})
}
