// Package models defines the data shapes shared by the client services,
// repositories, and gateways.
package models

// UserProfile describes the currently authenticated user. It is built once
// during a login or registration flow and replaced wholesale on every new
// login; nothing mutates it in place.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LocalAccount is an account registered entirely on-device; it has no remote
// counterpart. The roster of local accounts is append-only and persisted as a
// JSON sequence under a single storage key.
type LocalAccount struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Profile returns the account's public profile, i.e. the account minus its
// password.
func (a LocalAccount) Profile() UserProfile {
	return UserProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
