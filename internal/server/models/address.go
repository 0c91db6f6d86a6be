package models

// Address belongs to exactly one contact.
type Address struct {
	ID         string
	ContactID  string
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}
