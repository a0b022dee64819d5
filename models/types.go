package models

import "time"

// Database backend constants
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateContactRequest struct {
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
	Vehicle  string `json:"vehicle"`
}

// Response types

type RegisterResponse struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
}

type LoginResponse struct {
	Username string `json:"username"`
}

type MeResponse struct {
	Username string `json:"username"`
}

type CreateContactResponse struct {
	ContactID int64  `json:"contact_id"`
	LookupKey string `json:"lookup_key"`
	InfoURL   string `json:"info_url"`
	QRImage   string `json:"qr_image"`
}

type EmergencyInfoResponse struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Vehicle string `json:"vehicle"`
}

// Domain types

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Contact struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Mobile    string    `json:"mobile"`
	Vehicle   string    `json:"vehicle"`
	LookupKey string    `json:"lookup_key"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
