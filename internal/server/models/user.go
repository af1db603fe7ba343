package models

import "time"

// User is a registered account. PasswordHash holds a salted bcrypt digest;
// plaintext passwords are never persisted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
