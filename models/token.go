package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token of the self-hosted identity backend.
// The subject claim carries the account id.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the account id stored in the subject claim.
func (t *Token) GetUserID() (string, error) {
	return t.GetSubject()
}

func (t *Token) String() string {
	return t.SignedString
}
