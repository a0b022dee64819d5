// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, password
  - LoginRequest: username, password
  - CreateContactRequest: full_name, mobile, vehicle

# Response Types

Types for JSON responses:

  - RegisterResponse: account_id, username
  - LoginResponse: username
  - MeResponse: username
  - CreateContactResponse: contact_id, lookup_key, info_url, qr_image
  - EmergencyInfoResponse: name, mobile, vehicle
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Account: registered user with a bcrypt password hash (never serialized)
  - Contact: emergency contact record with its opaque lookup key

# Constants

Database backends:

	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
*/
package models
