// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements server-side login sessions.

A session is an opaque random token mapped to a username with an expiry.
The token is stored in an HttpOnly cookie and looked up on each request:

	store := session.NewStore(session.DefaultTTL)

	token, err := store.Create(username)
	session.SetCookie(w, token, session.DefaultTTL)

	username, ok := store.Get(session.FromRequest(r))

Sessions expire lazily on read; there is no background sweeper. Because the
token carries no claims, nothing is signed and no signing secret exists.
Logout destroys the server-side entry and clears the cookie:

	store.Destroy(token)
	session.ClearCookie(w)

The store is in-process, so sessions do not survive a restart. Logged-out
users simply log in again; contact records and their QR codes are unaffected
because lookup keys are persisted, never session state.
*/
package session
