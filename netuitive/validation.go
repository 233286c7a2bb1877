package netuitive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Below is the Error message for the configuration.
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Validate checks every field of the configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}

	durations := map[string]int64{
		"server.read_timeout":     int64(c.Server.ReadTimeout),
		"statsd.flush_interval":   int64(c.Statsd.FlushInterval),
		"metrics.system_interval": int64(c.Metrics.SystemInterval),
	}
	for key, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative: %w", key, ErrInvalidDuration)
		}
	}
	return nil
}

func formatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}
	return strings.Join(messages, "; ")
}
