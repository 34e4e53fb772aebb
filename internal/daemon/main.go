// Package daemon wires configuration, database, generator and web service together.
package daemon

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/go-randomstring/randomstring/internal/config"
	"github.com/go-randomstring/randomstring/internal/db"
	"github.com/go-randomstring/randomstring/internal/generator"
	"github.com/go-randomstring/randomstring/internal/uniuri"
	"github.com/go-randomstring/randomstring/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(":" + strconv.Itoa(d.cfg.Webserver.Port))
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// NewGenerator returns a generator reading from the configured random source.
func NewGenerator(cfg *config.Config) (*generator.Generator, error) {
	var source io.Reader

	switch cfg.Generator.Source {
	case config.SourceCrypto, "":
		source = uniuri.CryptoSource
	case config.SourceChaCha20:
		chacha, err := uniuri.NewSeededChaChaSource()
		if err != nil {
			return nil, errors.Wrap(err, "failed to seed chacha20 source")
		}

		source = chacha
	default:
		return nil, errors.Wrapf(config.ErrUnknownSource, "source %q", cfg.Generator.Source)
	}

	log.Debug().Str("source", cfg.Generator.Source).Msg("random source selected")

	return generator.New(source), nil
}

// OpenDB opens the profile database and seeds the default profiles into an empty one.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = seed(cfg, gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: web.New(cfg, gdb, gen),
	}, nil
}
