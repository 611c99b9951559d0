package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique, used as the login key
	PasswordHash string // argon2 encoded, never serialised to clients
	Phone        string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
