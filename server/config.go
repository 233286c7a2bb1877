package server

import (
	"net"
	"strconv"
	"time"
)

const (
	// DefaultHost is the default bind host for the web server.
	DefaultHost = "localhost"
	// DefaultPort is the default port number for the web server.
	DefaultPort = 8000
	// DefaultReadTimeout bounds how long reading a request may take.
	DefaultReadTimeout = 2 * time.Second
)

// Config is the configuration for creating a Server instance.
type Config struct {
	Host        string        `mapstructure:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port        int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// Addr returns the bind address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
