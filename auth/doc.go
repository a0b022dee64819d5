// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and token generation utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.VerifyPassword(hash, password)

VerifyPassword returns ErrInvalidCredentials on mismatch. For login attempts
against a username that does not exist, call VerifyDummy instead of returning
early - it runs a bcrypt comparison against a fixed hash so the two failure
modes are indistinguishable by timing or by error.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded and identify a server-side session entry.
The token itself carries no claims and is never signed.

# Lookup Keys

Lookup keys are random 16-byte (128-bit) secrets:

	key, err := auth.GenerateLookupKey()

A lookup key is generated once when a contact record is created, stored in a
unique column, and embedded in the record's QR code as part of a URL. The key
is deliberately a surrogate: scanning (or guessing) a key reveals nothing
about the record, and a real phone number never appears in an artifact.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
