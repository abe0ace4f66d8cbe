// Package models holds the client-side domain types.
package models

// User is the identity derived from auth responses.
//
// The login endpoint returns no name fields, so users built from a login
// (or restored from a persisted token) carry IdentityPending=true: partial
// identity, enrichment pending. Only registration yields a full identity.
type User struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	IdentityPending bool
}

// DisplayName returns the best label we have for the user: full name when
// identity is complete, otherwise the email.
func (u *User) DisplayName() string {
	if u.IdentityPending || u.FirstName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
