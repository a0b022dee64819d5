// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/quickcare/quick-care/cliparse"
	"github.com/quickcare/quick-care/handlers"
	"github.com/quickcare/quick-care/middleware"
	"github.com/quickcare/quick-care/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg, sessions)
	contactHandler := handlers.NewContactHandler(db, cfg, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account operations
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(accountHandler.Logout))
	mux.HandleFunc("GET /me", middleware.WithLogging(accountHandler.Me))

	// Contact operations (create requires a session)
	mux.HandleFunc("POST /contacts", middleware.WithLogging(contactHandler.Create))

	// QR resolution (public, unauthenticated)
	mux.HandleFunc("GET /emergency-info/{key}", middleware.WithLogging(contactHandler.EmergencyInfo))

	// Generated QR images
	mux.Handle("GET /static/qr_codes/",
		http.StripPrefix("/static/qr_codes/", http.FileServer(http.Dir(cfg.QRDir))))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quick-care API v1"))
	})

	return mux
}
