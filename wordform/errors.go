package wordform

import "errors"

var (
	// ErrParse signals unexpected HTML structure from kartaslov.
	ErrParse = errors.New("wordform: could not parse kartaslov page")

	// ErrNoDecomposer is reported when a Classifier has no Decomposer.
	ErrNoDecomposer = errors.New("wordform: no decomposer configured")

	// ErrUnknownBackend is returned for an unrecognised backend name.
	ErrUnknownBackend = errors.New("wordform: unknown backend")
)
