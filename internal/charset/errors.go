package charset

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is the parent of every error caused by options that can not
	// produce a usable charset. Test with errors.Is.
	ErrConfiguration = errors.New("invalid generation options")

	// ErrEmptyCharset is returned if no character is left after all filters were applied.
	ErrEmptyCharset = errors.Wrap(ErrConfiguration, "resolved charset is empty")

	// ErrEmptyLiteral is returned if a literal charset was explicitly given as empty string.
	ErrEmptyLiteral = errors.Wrap(ErrConfiguration, "charset was given explicitly but is empty")

	// ErrUnknownCapitalization is returned for capitalization values other than uppercase or lowercase.
	ErrUnknownCapitalization = errors.Wrap(ErrConfiguration, "capitalization must be uppercase or lowercase")
)
