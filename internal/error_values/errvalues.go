package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrChallengeNotFound  = errors.New("challenge doesn't exists")
	ErrAssignmentNotFound = errors.New("assignment doesn't exists")
	// Unique index on (user, day) for daily rows hit by a concurrent insert.
	// Callers resolve it idempotently by re-reading today's row.
	ErrAssignmentExists = errors.New("assignment for this day already exists")

	// No active challenge survived the full fallback chain. Fatal, not retried.
	ErrNoChallengesAvailable = errors.New("no active challenges available")
	// Confirm must match the most recently previewed challenge for that mood.
	ErrPreviewMismatch  = errors.New("confirmed challenge doesn't match preview")
	ErrAlreadyCompleted = errors.New("assignment already completed")
	ErrWrongOwner       = errors.New("assignment belongs to another user")
)
