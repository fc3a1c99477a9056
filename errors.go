package juritok

import (
	"errors"

	"github.com/jamesainslie/go-juritok/tokenizer"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInitFailed indicates the base tokenizer could not be built.
	ErrInitFailed = errors.New("juritok: tokenizer initialization failed")

	// ErrSpecialCasesNotFound indicates the special cases file does not exist.
	ErrSpecialCasesNotFound = errors.New("juritok: special cases file not found")

	// ErrInvalidSpecialCase indicates a special case that can never match,
	// such as an empty string or one containing whitespace.
	ErrInvalidSpecialCase = tokenizer.ErrInvalidSpecialCase
)
