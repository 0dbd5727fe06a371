package entity

import "time"

// User is a registered account. Email is the login identifier and is unique.
type User struct {
	ID           uint
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Principal returns the identity carried in tokens issued for this user.
func (u *User) Principal() *Principal {
	return &Principal{Email: u.Email, IsAdmin: u.IsAdmin}
}
