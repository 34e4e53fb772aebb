package charset

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Preset is the name of a built-in charset.
type Preset string

const (
	// Alphanumeric holds digits, lowercase and uppercase letters. It is the default charset.
	Alphanumeric Preset = "alphanumeric"
	// Alphabetic holds lowercase and uppercase letters.
	Alphabetic Preset = "alphabetic"
	// Numeric holds the decimal digits.
	Numeric Preset = "numeric"
	// Hex holds the lowercase hexadecimal digits.
	Hex Preset = "hex"
	// Binary holds 0 and 1.
	Binary Preset = "binary"
	// Octal holds the octal digits.
	Octal Preset = "octal"
)

const (
	digits    = "0123456789"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// unreadable are the characters removed by the readable filter.
	unreadable = "0OIl"
)

var presets = map[Preset]string{ //nolint:gochecknoglobals
	Alphanumeric: digits + lowercase + uppercase,
	Alphabetic:   lowercase + uppercase,
	Numeric:      digits,
	Hex:          digits + "abcdef",
	Binary:       "01",
	Octal:        "01234567",
}

// Chars returns the literal characters of the preset. Unknown presets return an empty string.
func (p Preset) Chars() string {
	return presets[p]
}

// Presets returns all built-in presets sorted by name.
func Presets() []Preset {
	out := lo.Keys(presets)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// LookupPreset reports whether name is a built-in preset and returns it.
func LookupPreset(name string) (Preset, bool) {
	p := Preset(name)
	_, ok := presets[p]

	return p, ok
}

// Capitalization forces all letters of a charset into one case.
type Capitalization string

const (
	// CapitalizationNone keeps the charset as it is.
	CapitalizationNone Capitalization = ""
	// Uppercase maps every letter to upper case.
	Uppercase Capitalization = "uppercase"
	// Lowercase maps every letter to lower case.
	Lowercase Capitalization = "lowercase"
)

// Valid reports whether c is one of the known capitalization styles.
func (c Capitalization) Valid() bool {
	switch c {
	case CapitalizationNone, Uppercase, Lowercase:
		return true
	default:
		return false
	}
}

// Config selects and filters a charset.
type Config struct {
	// Charset is a preset name or a literal set of characters. Empty selects Alphanumeric
	// unless Explicit is set.
	Charset string

	// Explicit marks Charset as given by the caller, so an empty value is an error
	// instead of the default.
	Explicit bool

	// Readable removes 0, O, I and l.
	Readable bool

	Capitalization Capitalization
}

// Resolved is an ordered set of distinct characters. It is never empty.
type Resolved []rune

// Len returns the number of distinct characters.
func (r Resolved) Len() int {
	return len(r)
}

// String returns the characters as string in their resolved order.
func (r Resolved) String() string {
	return string(r)
}

// Contains reports whether c is part of the charset.
func (r Resolved) Contains(c rune) bool {
	return lo.Contains(r, c)
}

// Resolve builds the charset described by cfg.
// A fresh slice is returned on every call.
func Resolve(cfg Config) (Resolved, error) {
	if !cfg.Capitalization.Valid() {
		return nil, errors.Wrapf(ErrUnknownCapitalization, "got %q", cfg.Capitalization)
	}

	var source string

	switch {
	case cfg.Charset == "" && cfg.Explicit:
		return nil, ErrEmptyLiteral
	case cfg.Charset == "":
		source = Alphanumeric.Chars()
	default:
		source = cfg.Charset
		if p, ok := LookupPreset(cfg.Charset); ok {
			source = p.Chars()
		}
	}

	chars := []rune(source)

	switch cfg.Capitalization {
	case Uppercase:
		chars = lo.Map(chars, func(c rune, _ int) rune { return unicode.ToUpper(c) })
	case Lowercase:
		chars = lo.Map(chars, func(c rune, _ int) rune { return unicode.ToLower(c) })
	case CapitalizationNone:
	}

	// folding can produce O, I or l, so the readable filter runs on the folded runes
	if cfg.Readable {
		chars = lo.Filter(chars, func(c rune, _ int) bool {
			return !strings.ContainsRune(unreadable, c)
		})
	}

	chars = lo.Uniq(chars)
	if len(chars) == 0 {
		return nil, ErrEmptyCharset
	}

	return Resolved(chars), nil
}
