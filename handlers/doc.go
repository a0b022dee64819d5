// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quick-care API.

# Handler Types

Each handler is a struct with database, config, and session dependencies:

  - AccountHandler: registration, login, logout, current user
  - ContactHandler: contact creation and emergency-info resolution

Handlers are created via constructor functions:

	accountHandler := handlers.NewAccountHandler(db, cfg, sessions)

# Account Flow

	POST /register → Register (409 on duplicate username)
	POST /login    → Login (sets the session cookie)
	POST /logout   → Logout (destroys the session)
	GET  /me       → Me (reports the logged-in username)

Login failures are deliberately uniform: an unknown username and a wrong
password produce the same 401 body, and the unknown-username path still runs
a bcrypt comparison so timing does not leak account existence.

# Contact Flow

	POST /contacts             → Create (session required)
	GET  /emergency-info/{key} → EmergencyInfo (public)

Create inserts the record and its random lookup key inside a transaction,
writes the QR PNG, and only then commits; a duplicate mobile or vehicle is a
409 with no partial row, and a failed artifact write rolls everything back.
EmergencyInfo resolves a scanned key with one indexed lookup and returns 404
for an unknown key. A contact as seen by the resolver moves through exactly
Created → Encoded → Resolvable; there is no update or revocation path.
*/
package handlers
