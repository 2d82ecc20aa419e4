package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedWord: the source answered for a different word
	// (kartaslov redirects "пять" to "пятить").
	ErrMismatchedWord = errors.New("decomposition is for another word")

	// ErrSegmentsNotFound: the source has no morpheme table for the word.
	ErrSegmentsNotFound = errors.New("no morpheme segments for word")
)

// LookupError is returned by decomposers when a word cannot be decomposed.
// Reason is ErrMismatchedWord, ErrSegmentsNotFound or a transport error.
type LookupError struct {
	Word   string
	Got    string // headword the source answered for, if any
	Reason error
}

func (e *LookupError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("lookup %q: %v (got %q)", e.Word, e.Reason, e.Got)
	}
	return fmt.Sprintf("lookup %q: %v", e.Word, e.Reason)
}

func (e *LookupError) Unwrap() error { return e.Reason }
