package metric

import (
	"fmt"

	"github.com/quipo/statsd"
	log "github.com/sirupsen/logrus"
)

// sender is the part of the statsd client the emitter relies on.
type sender interface {
	Incr(stat string, count int64) error
	Close() error
}

// Statsd emits counters to a statsd collector over UDP.
type Statsd struct {
	config StatsdConfig
	client sender
}

// NewStatsd creates an emitter for the given collector. Until Connect
// succeeds every Incr is dropped.
func NewStatsd(config StatsdConfig) *Statsd {
	return &Statsd{
		config: config,
		client: &statsd.NoopClient{},
	}
}

// Connect creates the UDP socket. With a flush interval the counters are
// aggregated and flushed periodically instead of sent one by one.
func (s *Statsd) Connect() error {
	client := statsd.NewStatsdClient(s.config.Addr(), s.config.MetricPrefix())
	if err := client.CreateSocket(); err != nil {
		return fmt.Errorf("failed to create statsd socket for %s: %w", s.config.Addr(), err)
	}

	if s.config.FlushInterval > 0 {
		s.client = statsd.NewStatsdBuffer(s.config.FlushInterval, client)
	} else {
		s.client = client
	}

	log.WithFields(log.Fields{
		"addr":   s.config.Addr(),
		"prefix": s.config.MetricPrefix(),
	}).Debug("statsd client connected")
	return nil
}

// Incr increments the named counter by one. Send errors are dropped.
func (s *Statsd) Incr(name string) {
	_ = s.client.Incr(name, 1)
}

// Close flushes pending counters and releases the socket.
func (s *Statsd) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close statsd client: %w", err)
	}
	return nil
}
