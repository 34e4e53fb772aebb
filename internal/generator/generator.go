// Package generator produces random strings from generation options.
//
// Generate is the only place the work happens. GenerateAsync and GenerateFuture run the same
// call on a separate goroutine and hand its result back through a completion callback or a
// channel, for callers that must not block.
package generator

import (
	"io"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/uniuri"
)

// Result is delivered by GenerateFuture. Exactly one of Value and Err is meaningful.
type Result struct {
	Value string
	Err   error
}

// Completion receives the outcome of GenerateAsync. On error s is empty.
type Completion func(s string, err error)

// Generator generates random strings from one random source.
// It is safe for concurrent use if its source is.
type Generator struct {
	sampler   *uniuri.Sampler
	validator *validator.Validate
}

// New returns a Generator reading from source. A nil source selects the
// operating system's secure random number generator.
func New(source io.Reader) *Generator {
	return &Generator{
		sampler:   uniuri.NewSampler(source),
		validator: validator.New(),
	}
}

var std = New(nil) //nolint:gochecknoglobals

// Generate returns a random string described by opts. Nil opts selects DefaultOptions.
func (g *Generator) Generate(opts *Options) (string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	s, err := g.generate(o)
	observe(utf8.RuneCountInString(s), err)

	return s, err
}

func (g *Generator) generate(o Options) (string, error) {
	if err := validateOptions(g.validator, o); err != nil {
		return "", err
	}

	if o.Length == 0 {
		return "", nil
	}

	chars, err := charset.Resolve(o.CharsetConfig())
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	res, err := g.sampler.Sample(chars, o.Length)
	if err != nil {
		log.Error().Err(err).Int("length", o.Length).Msg("random string generation failed")

		return "", errors.WithMessage(err, "generate")
	}

	observeDraws(res.Draws, res.Rejected)

	log.Trace().
		Int("length", o.Length).
		Int("charsetSize", chars.Len()).
		Int("draws", res.Draws).
		Int("rejected", res.Rejected).
		Msg("random string generated")

	return res.Value, nil
}

// GenerateLen returns a random alphanumeric string of the given length.
func (g *Generator) GenerateLen(length int) (string, error) {
	o := LengthOptions(length)

	return g.Generate(&o)
}

// GenerateAsync runs Generate on a new goroutine and calls done exactly once with its outcome.
// opts is copied before GenerateAsync returns. A nil done makes the call a no-op,
// nobody could receive the outcome.
func (g *Generator) GenerateAsync(opts *Options, done Completion) {
	if done == nil {
		return
	}

	o := copyOptions(opts)

	go func() {
		done(g.Generate(o))
	}()
}

// GenerateFuture runs Generate on a new goroutine. The returned channel receives
// exactly one Result and is then closed.
func (g *Generator) GenerateFuture(opts *Options) <-chan Result {
	out := make(chan Result, 1)

	g.GenerateAsync(opts, func(s string, err error) {
		out <- Result{Value: s, Err: err}
		close(out)
	})

	return out
}

func copyOptions(opts *Options) *Options {
	if opts == nil {
		return nil
	}

	o := *opts

	return &o
}

// Generate returns a random string described by opts using the secure random source.
func Generate(opts *Options) (string, error) {
	return std.Generate(opts)
}

// GenerateLen returns a random alphanumeric string of the given length.
func GenerateLen(length int) (string, error) {
	return std.GenerateLen(length)
}

// GenerateAsync is the non-blocking form of Generate.
func GenerateAsync(opts *Options, done Completion) {
	std.GenerateAsync(opts, done)
}

// GenerateFuture is the channel form of GenerateAsync.
func GenerateFuture(opts *Options) <-chan Result {
	return std.GenerateFuture(opts)
}
