package netuitive

import (
	"context"
	"fmt"
	"net"

	log "github.com/sirupsen/logrus"
	"netuitive/metric"
	"netuitive/server"
	"netuitive/server/handler"
	"netuitive/server/middleware"
)

// Netuitive contains the web server and its metrics.
type Netuitive struct {
	config Config
	statsd *metric.Statsd
	metric *metric.Metrics
	server *server.Server
}

// New creates a new instance of Netuitive.
func New(config Config) *Netuitive {
	std := metric.NewStatsd(config.Statsd)
	met := metric.New(config.Metrics)
	met.RegisterMetrics()

	h := middleware.Set(handler.New(std),
		middleware.NewInstrument(met),
		middleware.NewLogger(),
	)

	return &Netuitive{
		config: config,
		statsd: std,
		metric: met,
		server: server.New(config.Server, h),
	}
}

// Listen connects the statsd client and binds the web server and, when
// enabled, the metrics server. A bind failure is fatal for the caller.
func (n *Netuitive) Listen() (net.Addr, error) {
	if err := n.statsd.Connect(); err != nil {
		log.WithError(err).Warn("statsd is unavailable, counters are dropped")
	}

	addr, err := n.server.Listen()
	if err != nil {
		n.release()
		return nil, fmt.Errorf("failed to start web server: %w", err)
	}

	if n.config.Metrics.Enabled() {
		if err := n.metric.Start(); err != nil {
			_ = n.server.Close()
			n.release()
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
	}
	return addr, nil
}

// Serve runs the web server until ctx is done. Listen must be called first.
func (n *Netuitive) Serve(ctx context.Context) error {
	defer n.release()

	if n.config.Metrics.Enabled() {
		go n.metric.UpdateSystemMetrics(ctx)
	}

	if err := n.server.Serve(ctx); err != nil {
		return fmt.Errorf("failed to run web server: %w", err)
	}
	return nil
}

func (n *Netuitive) release() {
	if err := n.metric.Stop(); err != nil {
		log.WithError(err).Warn("failed to stop metrics server")
	}
	if err := n.statsd.Close(); err != nil {
		log.WithError(err).Warn("failed to close statsd client")
	}
}

// Start binds and runs the web server until ctx is done.
func (n *Netuitive) Start(ctx context.Context) error {
	if _, err := n.Listen(); err != nil {
		return err
	}
	return n.Serve(ctx)
}
