package models

import "time"

// Identity is an authenticated end-user account of the identity service.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is a server-tracked session granting identity-scoped access.
// Secret is what the client presents on subsequent calls.
type Session struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Secret string    `json:"-"`
	Expire time.Time `json:"expire"`
}

// Credentials are the sign-in and sign-up inputs. Name is only used on
// sign-up.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Account is an identity record of the self-hosted identity backend.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity returns the public part of the account.
func (a Account) Identity() Identity {
	return Identity{ID: a.ID, Name: a.Name, Email: a.Email}
}
