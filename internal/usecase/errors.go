package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrContestNotFound     = errors.New("contest not found")
	ErrContestLocked       = errors.New("contest locked")
	ErrDuplicateSubmission = errors.New("duplicate submission")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("persistence conflict")
)
