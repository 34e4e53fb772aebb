package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrNegativeLength error if config generator.length is below zero.
	ErrNegativeLength = errors.New("toml config generator.length can not be negative")

	// ErrMaxLengthTooSmall error if config generator.maxLength is smaller than generator.length.
	ErrMaxLengthTooSmall = errors.New("toml config generator.maxLength must not be smaller than generator.length")

	// ErrMaxCountTooSmall error if config generator.maxCount is below 1.
	ErrMaxCountTooSmall = errors.New("toml config generator.maxCount must be at least 1")

	// ErrUnknownCapitalization error if config generator.capitalization is not uppercase or lowercase.
	ErrUnknownCapitalization = errors.New("toml config generator.capitalization must be empty, uppercase or lowercase")

	// ErrUnknownSource error if config generator.source is not supported.
	ErrUnknownSource = errors.New("toml config generator.source must be crypto or chacha20")

	// ErrUnknownDBEngine error if config db.gormEngine is not supported.
	ErrUnknownDBEngine = errors.New("toml config db.gormEngine must be sqlite, mysql or postgres")
)
