package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Errors returned by services. Handlers map them onto HTTP statuses; callers
// should match them with errors.Is since they are usually wrapped.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrIncompleteProfile  = errors.New("profile is incomplete: sex, age, height and weight are required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnavailable        = errors.New("service unavailable")
)

// dbErr translates gorm's not-found and duplicate-key errors. Duplicate keys
// are only reported when the connection was opened with TranslateError.
func dbErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
