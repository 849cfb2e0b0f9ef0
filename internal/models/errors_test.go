// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationf(t *testing.T) {
	err := Validationf("limit must be >= 1, got %d", 0)
	if err.Error() != "limit must be >= 1, got 0" {
		t.Errorf("message = %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("IsValidation is false for a ValidationError")
	}
}

func TestIsValidationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("ingest: %w", Validationf("bad record"))
	if !IsValidation(wrapped) {
		t.Error("IsValidation must see through error wrapping")
	}
}

func TestIsValidationNegative(t *testing.T) {
	if IsValidation(ErrNotFound) {
		t.Error("ErrNotFound must not be a ValidationError")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("plain error must not be a ValidationError")
	}
	if IsValidation(nil) {
		t.Error("nil must not be a ValidationError")
	}
}

func TestErrNotFoundIdentity(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is must see through wrapping")
	}
}
