// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/generator"
)

const (
	// EnvConfigJSON names the env variable holding a JSON config override.
	EnvConfigJSON = "RANDOMSTRING_CONFIG_JSON"

	defaultShutDownTime = 5
	defaultMaxLength    = 4096
	defaultMaxCount     = 100
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

// Default returns a valid configuration for running without a config file.
func Default() Config {
	c := Config{
		Title: "randomstring",
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		DB: DB{
			GormEngine: DBEngineSQLite,
			Name:       "randomstring.db",
		},
	}

	c.Log.LogLevel = "info"
	c.Log.AppName = "randomstring"
	c.Log.ServiceName = "randomstring"
	c.Log.Console.Enabled = true
	c.Log.Console.UseConsoleWriter = true

	_ = validate(&c)

	return c
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config override from "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate config settings and fill in defaults for unset optional values.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if err := validateGenerator(&c.Generator, invalidErrMessage); err != nil {
		return err
	}

	return validateDB(&c.DB, invalidErrMessage)
}

func validateGenerator(g *Generator, invalidErrMessage string) error {
	if g.Length == nil {
		g.Length = lo.ToPtr(generator.DefaultLength)
	}

	if *g.Length < 0 {
		return errors.Wrap(ErrNegativeLength, invalidErrMessage)
	}

	if g.MaxLength == 0 {
		g.MaxLength = max(defaultMaxLength, *g.Length)
	}

	if g.MaxLength < *g.Length {
		return errors.Wrap(ErrMaxLengthTooSmall, invalidErrMessage)
	}

	if g.MaxCount == 0 {
		g.MaxCount = defaultMaxCount
	}

	if g.MaxCount < 1 {
		return errors.Wrap(ErrMaxCountTooSmall, invalidErrMessage)
	}

	if !charset.Capitalization(g.Capitalization).Valid() {
		return errors.Wrap(ErrUnknownCapitalization, invalidErrMessage)
	}

	switch g.Source {
	case "":
		g.Source = SourceCrypto
	case SourceCrypto, SourceChaCha20:
	default:
		return errors.Wrap(ErrUnknownSource, invalidErrMessage)
	}

	return nil
}

func validateDB(db *DB, invalidErrMessage string) error {
	switch db.GormEngine {
	case "":
		db.GormEngine = DBEngineSQLite
	case DBEngineSQLite, DBEngineMySQL, DBEnginePostgres:
	default:
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	return nil
}
