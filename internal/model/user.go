package model

import "time"

// User represents a user in the database.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserRequest represents a user registration request.
// An empty password asks the server to generate one.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response with a JWT token and user info.
// GeneratedPassword is only set by registrations that asked for one, and is
// never stored in plaintext.
type AuthResponse struct {
	Token             string       `json:"token"`
	User              UserResponse `json:"user"`
	GeneratedPassword string       `json:"generated_password,omitempty"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
