// Package cmd parse args to configure application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"netuitive/netuitive"
)

// EnvPrefix prefixes every environment override, e.g. NETUITIVE_SERVER_PORT.
const EnvPrefix = "NETUITIVE"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"host":                  "server.host",
	"port":                  "server.port",
	"read-timeout":          "server.read_timeout",
	"statsd-host":           "statsd.host",
	"statsd-port":           "statsd.port",
	"statsd-prefix":         "statsd.prefix",
	"statsd-flush-interval": "statsd.flush_interval",
	"metrics-port":          "metrics.port",
	"metrics-path":          "metrics.path",
	"metrics-interval":      "metrics.system_interval",
	"log-level":             "log.level",
	"log-format":            "log.format",
}

// Run starts the application and blocks until an interrupt is received.
func Run() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	config, err := SetupConfig(os.Stdout, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.WithError(err).Error("failed to set up configuration")
		os.Exit(1)
	}
	if err = SetupLogging(os.Stdout, config.Log); err != nil {
		log.WithError(err).Error("failed to set up logging")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = netuitive.New(config).Start(ctx); err != nil {
		log.WithError(err).Error("web server failed")
		stop()
		os.Exit(1)
	}
}

// SetupConfig sets up and returns the configuration.
func SetupConfig(w io.Writer, args []string) (netuitive.Config, error) {
	config, err := Parse(w, args)
	if err != nil {
		return config, err
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Parse parses the command line arguments. Flags win over NETUITIVE_*
// environment variables, which win over the optional config file.
func Parse(w io.Writer, args []string) (netuitive.Config, error) {
	def := netuitive.DefaultConfig()

	fs := pflag.NewFlagSet("netuitive", pflag.ContinueOnError)
	fs.SetOutput(w)
	fs.String("config", "", "path to a YAML config file")
	fs.String("host", def.Server.Host, "web server bind host")
	fs.Int("port", def.Server.Port, "web server listening port")
	fs.Duration("read-timeout", def.Server.ReadTimeout, "maximum duration for reading a request")
	fs.String("statsd-host", def.Statsd.Host, "statsd collector host")
	fs.Int("statsd-port", def.Statsd.Port, "statsd collector port")
	fs.String("statsd-prefix", def.Statsd.Prefix, "prefix of every statsd counter")
	fs.Duration("statsd-flush-interval", def.Statsd.FlushInterval, "aggregate counters and flush them at this interval, 0 sends each one")
	fs.Int("metrics-port", def.Metrics.Port, "Prometheus metrics port, 0 disables it")
	fs.String("metrics-path", def.Metrics.Path, "Prometheus metrics path")
	fs.Duration("metrics-interval", def.Metrics.SystemInterval, "process metrics sampling interval")
	fs.String("log-level", def.Log.Level, "log level: debug, info, warn, error")
	fs.String("log-format", def.Log.Format, "log format: text, json")

	if err := fs.Parse(args); err != nil {
		return netuitive.Config{}, fmt.Errorf("failed to parse args: %w", err)
	}
	if fs.NArg() != 0 {
		return netuitive.Config{}, errors.New("some args are not parsed")
	}

	v := viper.New()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return netuitive.Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return netuitive.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	con := netuitive.Config{}
	if err := v.Unmarshal(&con); err != nil {
		return netuitive.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return con, nil
}

// SetupLogging configures the standard logger.
func SetupLogging(w io.Writer, config netuitive.LogConfig) error {
	level, err := log.ParseLevel(config.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(w)
	if config.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
