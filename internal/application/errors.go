package application

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage failure")
)

var (
	ErrReportNotFound     = fmt.Errorf("report %w", ErrNotFound)
	ErrVoteNotFound       = fmt.Errorf("vote %w", ErrNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)

	ErrAlreadyVoted = fmt.Errorf("%w: already voted on this report", ErrConflict)
	ErrEmailTaken   = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrNotAuthorized = fmt.Errorf("%w: only department staff or admins can update report status", ErrForbidden)
	ErrInactiveUser  = fmt.Errorf("%w: account is disabled", ErrForbidden)

	ErrInvalidCategory  = fmt.Errorf("%w: unrecognized issue type", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: unrecognized status", ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: unrecognized role", ErrValidation)
	ErrMissingLocation  = fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	ErrInvalidTimeRange = fmt.Errorf("%w: end must not be before start", ErrValidation)

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// txError passes domain errors through and wraps anything else, such as a
// failed commit, as a storage failure.
func txError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrStorage):
		return err
	}
	return storageError(op, err)
}
