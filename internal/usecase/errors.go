package usecase

import (
	"errors"

	"talent-match/internal/domain/matching"
)

// Precondition errors are raised before the engine runs. An empty ranked
// page is a valid result; these are not.
var (
	ErrJobNotFound           = errors.New("job not found")
	ErrCandidateNotFound     = errors.New("candidate not found")
	ErrNoCandidatesAvailable = errors.New("no candidates available")
	ErrNoJobsAvailable       = errors.New("no jobs available")
	ErrInvalidFilter         = matching.ErrInvalidFilter

	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
