// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		key     string
	}{
		{"plain", "http://localhost:5000", "abc123XYZ_-456789012345"},
		{"trailing slash", "https://quick-care.example.com/", "k0TQyZ9xN2fH8vLwB1cDmA"},
		{"nested base path", "https://example.com/app", "AAAAAAAAAAAAAAAAAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := BuildPayload(tt.baseURL, tt.key)

			if !strings.Contains(payload, "/emergency-info/") {
				t.Errorf("BuildPayload() = %q, missing resolution path", payload)
			}
			if strings.Contains(payload, "//emergency-info") {
				t.Errorf("BuildPayload() = %q, doubled slash", payload)
			}

			got, err := ParsePayload(payload)
			if err != nil {
				t.Fatalf("ParsePayload() error = %v", err)
			}
			if got != tt.key {
				t.Errorf("round trip = %q, want %q", got, tt.key)
			}
		})
	}
}

func TestParsePayloadRejectsGarbage(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"random text", "BEGIN:VCARD"},
		{"wrong path", "http://localhost:5000/contacts/abc"},
		{"empty key", "http://localhost:5000/emergency-info/"},
		{"key with slash", "http://localhost:5000/emergency-info/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePayload(tt.payload); err != ErrNotLookupURL {
				t.Errorf("ParsePayload(%q) error = %v, want ErrNotLookupURL", tt.payload, err)
			}
		})
	}
}

func TestGenerateWritesValidPNG(t *testing.T) {
	dir := t.TempDir()

	name, err := Generate("http://localhost:5000/emergency-info/testkey1234567890abcde", dir)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.HasSuffix(name, ".png") {
		t.Errorf("Generate() file name = %q, want .png suffix", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read generated image: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Generated file is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imageSize || bounds.Dy() != imageSize {
		t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), imageSize, imageSize)
	}
}

func TestGenerateUniqueNames(t *testing.T) {
	dir := t.TempDir()

	n1, err := Generate("payload-one", dir)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	n2, err := Generate("payload-one", dir)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if n1 == n2 {
		t.Error("Generate() reused an artifact name for a second call")
	}
}

func TestGenerateCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "qr_codes")

	if _, err := Generate("payload", dir); err != nil {
		t.Fatalf("Generate() with missing dir error = %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Generate() did not create directory: %v", err)
	}
}
