// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - BaseURL: Public base URL encoded into QR payloads (default: http://localhost:<port>)
  - QRDir: Directory for generated QR images (default: static/qr_codes)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	--base-url Public base URL
	--qr-dir  QR image directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BASE_URL      → --base-url
	QR_DIR        → --qr-dir

CLI flags take precedence over environment variables. main loads a .env
file first (via godotenv), so either mechanism can supply values.

# Validation

ParseFlags returns an error if DATABASE_URL is missing. There are no
hardcoded secrets; the server holds no signing keys at all.
*/
package cliparse
