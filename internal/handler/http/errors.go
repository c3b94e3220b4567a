// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingPicture is reported when a picture upload has no "picture"
	// form file.
	ErrMissingPicture = errors.New("no picture provided")

	// ErrForeignOrigin is reported when a browser request comes from an
	// origin outside the allowed list.
	ErrForeignOrigin = errors.New("origin not allowed")
)
