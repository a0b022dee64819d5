// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quick-care API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions)

# Endpoints

Health:

	GET /health

Accounts:

	POST /register - Create account
	POST /login    - Log in (sets session cookie)
	POST /logout   - Log out
	GET  /me       - Current user

Contacts:

	POST /contacts             - Create contact + QR code (session required)
	GET  /emergency-info/{key} - Resolve a scanned QR code (public)

Artifacts:

	GET /static/qr_codes/{file} - Generated QR PNGs

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg, sessions)
	contactHandler := handlers.NewContactHandler(db, cfg, sessions)

All handlers receive the database connection, configuration, and the
session store.
*/
package router
