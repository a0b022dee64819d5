// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quick-care API server.

quick-care lets a registered user store an emergency contact record (name,
mobile number, vehicle identifier) and receive a QR code that resolves back
to that record when scanned - for example from a sticker on a windshield.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=quick_care.db go run main.go

Or with flags:

	go run main.go -p 5000 -t sqlite -d quick_care.db

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres) or file path (sqlite)

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BASE_URL (--base-url): public base URL encoded into QR payloads
  - QR_DIR (--qr-dir): directory for generated QR images

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, contacts)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and token generation
  - session: Server-side login sessions
  - qr: QR payload building and PNG generation
  - db: Driver selection, schema creation, error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
