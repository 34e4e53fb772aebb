package generator

import (
	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/uniuri"
)

var (
	// ErrConfiguration is returned for options that can not produce a string:
	// negative length, unknown capitalization, or a charset that is empty after filtering.
	ErrConfiguration = charset.ErrConfiguration

	// ErrEntropyUnavailable is returned if the random source failed. It is never retried.
	ErrEntropyUnavailable = uniuri.ErrEntropyUnavailable
)
