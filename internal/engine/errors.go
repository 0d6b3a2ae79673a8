package engine

import "errors"

// Configuration errors: rejected before a session is ever built.
var (
	ErrNoSystemsSelected    = errors.New("at least one body system must be selected")
	ErrInvalidQuestionCount = errors.New("question count must be positive")
	ErrInvalidDifficulty    = errors.New("difficulty must be between 1 and 5")
)

// State machine errors: the session is left unmodified when one is
// returned, and handlers surface the message as-is to the learner.
var (
	ErrAlreadyStarted   = errors.New("session already started")
	ErrNotStarted       = errors.New("session has not been started")
	ErrSessionCompleted = errors.New("session already completed")
	ErrSessionAbandoned = errors.New("session was abandoned")
	ErrNotInProgress    = errors.New("session is not in progress")
)
