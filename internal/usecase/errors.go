package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrAlreadyDismissed      = errors.New("batsman already dismissed")
	ErrInvalidState          = errors.New("invalid state")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrContention            = errors.New("concurrent update in progress")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Refinements keep their parent kind for errors.Is checks.
var (
	ErrInvalidTeam       = fmt.Errorf("%w: team is not playing in this match", ErrInvalidInput)
	ErrInningsInProgress = fmt.Errorf("%w: current innings pair has not finished", ErrInvalidState)
	ErrInningsIncomplete = fmt.Errorf("%w: required innings are not completed yet", ErrInvalidState)
)

// errSkipWrite lets a locked match transition finish without persisting.
var errSkipWrite = errors.New("skip write")
