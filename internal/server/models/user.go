// Package models contains the persistent entities of the contact book.
package models

import "time"

// User is an account record. Username is the identity and never changes
// after registration. Token and TokenExpiredAt mirror the last issued
// bearer token for introspection by older clients; the authentication
// path never reads them.
type User struct {
	Username       string
	Name           string
	Password       string // bcrypt hash
	Token          *string
	TokenExpiredAt *int64 // epoch millis
	CreatedAt      time.Time
}
