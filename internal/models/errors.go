// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package models

import (
	"errors"
	"fmt"
)

// The core has exactly two failure kinds. Every engine and catalog failure
// is one of these; both are deterministic for a given catalog snapshot, so
// no transient/retriable class exists.

// ErrNotFound indicates a lookup (by id or by resolved title) found nothing.
// The API layer maps it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError indicates a bad caller-supplied parameter: out-of-range
// percentile or limit, or an empty catalog. The API layer maps it to a 400.
type ValidationError struct {
	msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.msg }

// Validationf creates a ValidationError with a formatted message.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
