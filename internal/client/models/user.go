// Package models defines client-side data models used by the ByteMe client.
package models

import "time"

// User is the full stored record, digest included. It never leaves the
// repository and session layers.
type User struct {
	// ID is an opaque identifier generated at creation.
	ID string

	// Email is unique across all records.
	Email string

	// FullName is the display name; empty right after sign-up.
	FullName string

	// PasswordHash is the lowercase hex SHA-256 digest of the password.
	PasswordHash string

	LearningStreak   int64
	ExperiencePoints int64

	// CreatedAt is the insertion time in UTC, millisecond precision.
	CreatedAt time.Time
}

// NewUser is a User before the store assigns ID and CreatedAt.
type NewUser struct {
	Email            string
	FullName         string
	PasswordHash     string
	LearningStreak   int64
	ExperiencePoints int64
}

// Profile is the digest-free view of a User that is held as the active
// session and mirrored to local storage.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Profile strips the password digest and counters.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, FullName: u.FullName}
}
