// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the uniform outcome handed to presentation code. A failed
// result carries the human-readable message of the underlying error; the
// error itself stays available through Err for status mapping.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	err error
}

// NewResult builds a result from a value/error pair. Data is kept on
// failure so callers can still show partial state.
func NewResult[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{Success: false, Data: data, Error: err.Error(), err: err}
	}
	return Result[T]{Success: true, Data: data}
}

// Ok builds a successful result.
func Ok[T any](data T) Result[T] {
	return NewResult(data, nil)
}

// Fail builds a failed result with a zero value.
func Fail[T any](err error) Result[T] {
	var zero T
	return NewResult(zero, err)
}

// Err returns the error behind a failed result, or nil.
func (r Result[T]) Err() error {
	return r.err
}
