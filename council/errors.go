package council

import "errors"

var (
	errMissingWinner = errors.New("voting result has no winner")

	// ErrDebateCancelled is returned when the context is cancelled between
	// turns; the session is failed and no leaderboard update happens.
	ErrDebateCancelled = errors.New("debate cancelled")

	// ErrNoParticipants is returned for an empty council.
	ErrNoParticipants = errors.New("debate needs at least one participant")

	// ErrEmptyQuestion rejects blank questions before any model call.
	ErrEmptyQuestion = errors.New("question must not be empty")
)
