package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrShortPassword    = errors.New("password must be at least 8 characters")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrInvalidMood      = errors.New("invalid mood")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidPrivacy   = errors.New("invalid privacy")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
