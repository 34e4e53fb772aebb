package config

import (
	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/generator"
	"github.com/go-randomstring/randomstring/internal/logger"
)

// Supported random sources.
const (
	SourceCrypto   = "crypto"
	SourceChaCha20 = "chacha20"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Generator Generator
}

// Webserver implement webserver settings.
type Webserver struct {
	APIToken       string // bearer token required to change profiles, empty disables the check
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Generator holds the defaults and limits used by the command line and the web service.
type Generator struct {
	Length         *int   // default output length, unset selects generator.DefaultLength, 0 is kept
	Charset        string // default preset name or literal charset
	Readable       bool   // strip 0, O, I and l by default
	Capitalization string // "", uppercase or lowercase
	MaxLength      int    // largest length a request may ask for
	MaxCount       int    // largest number of strings per request
	Source         string // crypto or chacha20
}

// OutputLength returns the configured default length.
func (g Generator) OutputLength() int {
	if g.Length == nil {
		return generator.DefaultLength
	}

	return *g.Length
}

// Options returns the configured default generation options.
func (g Generator) Options() generator.Options {
	return generator.Options{
		Length:         g.OutputLength(),
		Charset:        g.Charset,
		Readable:       g.Readable,
		Capitalization: charset.Capitalization(g.Capitalization),
	}
}
