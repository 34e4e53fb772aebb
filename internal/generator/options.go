package generator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/go-randomstring/randomstring/internal/charset"
)

// DefaultLength is the length used if no options are given.
const DefaultLength = 32

// Options controls a single generation.
type Options struct {
	// Length of the output in characters. Zero yields the empty string.
	Length int `json:"length" toml:"length" validate:"gte=0"`

	// Charset is a preset name (see charset.Presets) or a literal set of characters.
	// Empty selects the alphanumeric preset unless CharsetExplicit is set.
	Charset string `json:"charset" toml:"charset"`

	// CharsetExplicit marks an empty Charset as deliberately given by the caller.
	CharsetExplicit bool `json:"-" toml:"-"`

	// Readable strips 0, O, I and l from the charset.
	Readable bool `json:"readable" toml:"readable"`

	Capitalization charset.Capitalization `json:"capitalization" toml:"capitalization" validate:"omitempty,oneof=uppercase lowercase"` //nolint:lll
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// LengthOptions is the shorthand for options that only set the length.
func LengthOptions(length int) Options {
	return Options{Length: length}
}

// CharsetConfig returns the charset part of the options.
func (o Options) CharsetConfig() charset.Config {
	return charset.Config{
		Charset:        o.Charset,
		Explicit:       o.CharsetExplicit,
		Readable:       o.Readable,
		Capitalization: o.Capitalization,
	}
}

func validateOptions(v *validator.Validate, o Options) error {
	if err := v.Struct(o); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]

			return errors.Wrapf(ErrConfiguration,
				"field '%s' failed validation tag '%s' (value %v)", ve.Field(), ve.Tag(), ve.Value())
		}

		return errors.Wrap(ErrConfiguration, err.Error())
	}

	return nil
}
