package metric

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config defines the configuration for the metrics server.
type Config struct {
	Port           int           `mapstructure:"port" validate:"min=0,max=65535"` // Port for metrics server, 0 disables it
	Path           string        `mapstructure:"path" validate:"required,startswith=/"`
	SystemInterval time.Duration `mapstructure:"system_interval"` // Sampling interval of process gauges
}

// Default values for metrics configuration.
const (
	DefaultMetricsPort    = 0
	DefaultMetricsPath    = "/metrics"
	DefaultSystemInterval = 5 * time.Second
)

// Enabled reports whether the Prometheus endpoint should be served.
func (c Config) Enabled() bool {
	return c.Port != 0
}

// StatsdConfig defines where counters are sent.
type StatsdConfig struct {
	Host          string        `mapstructure:"host" validate:"required,hostname_rfc1123|ip"`
	Port          int           `mapstructure:"port" validate:"min=1,max=65535"`
	Prefix        string        `mapstructure:"prefix" validate:"excludesall=:@0x7C"`
	FlushInterval time.Duration `mapstructure:"flush_interval"` // 0 sends one datagram per Incr
}

// Default values for statsd configuration.
const (
	DefaultStatsdHost   = "172.17.0.16"
	DefaultStatsdPort   = 8125
	DefaultStatsdPrefix = "test.rob-egan"
)

// Addr returns the collector address in host:port form.
func (c StatsdConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// MetricPrefix returns the prefix joined to every counter name. A non-empty
// prefix always ends with a single dot.
func (c StatsdConfig) MetricPrefix() string {
	p := strings.TrimRight(c.Prefix, ".")
	if p == "" {
		return ""
	}
	return p + "."
}
