// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package qr turns a contact's lookup key into a scannable QR artifact.

The payload encoded into the image is a resolution URL:

	payload := qr.BuildPayload(cfg.BaseURL, lookupKey)   // .../emergency-info/<key>
	name, err := qr.Generate(payload, cfg.QRDir)

Generate writes a 256x256 PNG named <uuid>.png under the artifact directory
and returns the file name; the router serves the directory statically.
ParsePayload inverts BuildPayload, so a scanned payload round-trips to the
exact key that was encoded.

Resolution of a scanned key is a single indexed database lookup. The
artifact itself contains no personal data - only the surrogate key.
*/
package qr
