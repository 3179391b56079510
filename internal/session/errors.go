package session

import "errors"

var (
	// ErrAttemptInProgress is returned when starting an assessment while
	// another one is being generated, answered or awaiting acknowledgement.
	ErrAttemptInProgress = errors.New("an assessment is already in progress")

	// ErrNoQuestions wraps the generation failure that left the session idle.
	ErrNoQuestions = errors.New("no questions could be generated")

	// ErrNoActiveAssessment is returned when there is no quiz to answer or finish.
	ErrNoActiveAssessment = errors.New("no active assessment")

	// ErrInvalidOption is returned for an option index outside the question's choices.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNoResult is returned when acknowledging before a scorecard exists.
	ErrNoResult = errors.New("no scored result to acknowledge")

	// ErrBusy is returned when the attempt is being evaluated.
	ErrBusy = errors.New("assessment is being evaluated")

	// ErrCancelled is returned by an in-flight start or finish whose attempt
	// was cancelled before it completed.
	ErrCancelled = errors.New("assessment was cancelled")
)
