package domain

import "errors"

var (
	// ErrMissingField marks a row without a merchant or an amount.
	ErrMissingField = errors.New("missing required field")
	// ErrParseFailure marks an amount that is not a number after symbol stripping.
	ErrParseFailure = errors.New("amount is not numeric")
	// ErrSourceRead marks a statement that could not be read at all.
	ErrSourceRead = errors.New("statement could not be read")
	// ErrInvalidRule marks a rule table that cannot be evaluated.
	ErrInvalidRule = errors.New("invalid rule")
)
