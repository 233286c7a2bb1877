// Package netuitive wires the web server to its statsd and Prometheus metrics.
package netuitive

import (
	"netuitive/metric"
	"netuitive/server"
)

// Config contains the configuration for the whole application.
type Config struct {
	Server  server.Config       `mapstructure:"server"`
	Statsd  metric.StatsdConfig `mapstructure:"statsd"`
	Metrics metric.Config       `mapstructure:"metrics"`
	Log     LogConfig           `mapstructure:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// Default values for logging configuration.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Server: server.Config{
			Host:        server.DefaultHost,
			Port:        server.DefaultPort,
			ReadTimeout: server.DefaultReadTimeout,
		},
		Statsd: metric.StatsdConfig{
			Host:   metric.DefaultStatsdHost,
			Port:   metric.DefaultStatsdPort,
			Prefix: metric.DefaultStatsdPrefix,
		},
		Metrics: metric.Config{
			Port:           metric.DefaultMetricsPort,
			Path:           metric.DefaultMetricsPath,
			SystemInterval: metric.DefaultSystemInterval,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
