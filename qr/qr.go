// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// ErrNotLookupURL is returned by ParsePayload for payloads that are not
// emergency-info lookup URLs.
var ErrNotLookupURL = errors.New("payload is not a lookup URL")

// infoPath is the public resolution route the payload points at.
const infoPath = "/emergency-info/"

// imageSize is the QR PNG edge length in pixels.
const imageSize = 256

// BuildPayload returns the URL encoded into a contact's QR code.
// The payload contains only the opaque lookup key, never contact fields.
func BuildPayload(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + infoPath + key
}

// ParsePayload extracts the lookup key from a payload produced by
// BuildPayload. BuildPayload then ParsePayload is the identity on the key.
func ParsePayload(payload string) (string, error) {
	i := strings.LastIndex(payload, infoPath)
	if i < 0 {
		return "", ErrNotLookupURL
	}
	key := payload[i+len(infoPath):]
	if key == "" || strings.ContainsAny(key, "/?#") {
		return "", ErrNotLookupURL
	}
	return key, nil
}

// Generate encodes payload as a QR PNG under dir and returns the file name.
// The name is a fresh UUID so artifacts never collide and never leak the
// contact's name the way <full_name>.png would.
func Generate(payload, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	name := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(dir, name), png, 0644); err != nil {
		return "", fmt.Errorf("failed to write QR image: %w", err)
	}

	return name, nil
}
