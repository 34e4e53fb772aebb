package uniuri

import (
	"errors"
)

var (
	// ErrEntropyUnavailable is returned if the random source could not deliver enough bytes.
	// Sample never retries a failed read.
	ErrEntropyUnavailable = errors.New("uniuri: random source unavailable")

	// ErrEmptyChars is returned if Sample is called without characters to draw from.
	ErrEmptyChars = errors.New("uniuri: empty charset")

	// ErrNegativeLength is returned for lengths below zero.
	ErrNegativeLength = errors.New("uniuri: negative length")
)
