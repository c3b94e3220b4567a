package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// Field names accepted by [CredentialsValidator].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// MinPasswordLength is the shortest password accepted on sign-in and sign-up.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialsValidator checks sign-in and sign-up input before any remote
// call is made. Sign-in validates email and password; pass FieldName as well
// for sign-up.
type CredentialsValidator struct{}

// NewCredentialsValidator returns a [CredentialsValidator] as a [Validator].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return validateCredentials(value, fields...)
	case *models.Credentials:
		return validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrShortPassword
			}
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
