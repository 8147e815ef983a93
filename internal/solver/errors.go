package solver

import "errors"

var (
	// ErrInvalidInput reports malformed words or feedback: length
	// mismatches or characters outside the alphabet.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPool reports a best-guess search with no candidates.
	ErrEmptyPool = errors.New("empty guess pool")

	// ErrFeedbackInconsistency reports that no dictionary word is
	// consistent with the feedback applied so far.
	ErrFeedbackInconsistency = errors.New("feedback inconsistent with dictionary")
)
