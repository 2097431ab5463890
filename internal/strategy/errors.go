package strategy

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the registry for unknown strategy names.
var ErrNotFound = errors.New("strategy not found")

// ConfigError reports invalid strategy parameters. It is surfaced to the
// caller immediately and never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid strategy config: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
