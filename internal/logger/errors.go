package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrFilePathIsEmpty is returned if file logging is enabled without Log.file.Path.
	ErrFilePathIsEmpty = errors.New("config Log.file.Path can not be empty if file logging is enabled")
)

// ErrorHandler reports events zerolog failed to write on stderr, the one writer left.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "randomstring: log event lost: %v\n", err)
}
