package models

// Contact belongs to exactly one user; rows are always scoped by
// UserUsername when queried.
type Contact struct {
	ID           string
	UserUsername string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
}
