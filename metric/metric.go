// Package metric provides statsd counters and Prometheus metrics for the web server.
package metric

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/process"
	log "github.com/sirupsen/logrus"
)

// Metrics contains the Prometheus metrics server and registered custom metrics.
type Metrics struct {
	httpServer      *http.Server
	config          Config
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cpuUsage        prometheus.Gauge
	memoryUsage     prometheus.Gauge
}

// New creates a new Metrics instance with the specified configuration.
func New(config Config) *Metrics {
	return &Metrics{
		config:   config,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "process_cpu_usage_percentage",
			Help: "CPU usage percentage of the server process.",
		}),
		memoryUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "process_memory_usage_bytes",
			Help: "Resident memory of the server process in bytes.",
		}),
	}
}

// RegisterMetrics registers custom metrics with the registry.
func (m *Metrics) RegisterMetrics() {
	m.registry.MustRegister(m.requests)
	m.registry.MustRegister(m.requestDuration)
	m.registry.MustRegister(m.cpuUsage)
	m.registry.MustRegister(m.memoryUsage)
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Start binds the metrics port and serves the registry in the background.
func (m *Metrics) Start() error {
	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())
	m.httpServer = &http.Server{
		Addr:        ":" + strconv.Itoa(m.config.Port),
		ReadTimeout: 2 * time.Second,
		Handler:     mux,
	}

	ln, err := net.Listen("tcp", m.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind metrics server: %w", err)
	}

	go func() {
		log.Infof("Starting metrics server on port %d at path %s", m.config.Port, m.config.Path)
		if err := m.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped unexpectedly")
		}
	}()
	return nil
}

// Stop shuts down the metrics server.
func (m *Metrics) Stop() error {
	if m.httpServer != nil {
		log.Infof("Stopping metrics server on port %d", m.config.Port)
		return m.httpServer.Close()
	}
	return nil
}

// ObserveRequest counts a served request and records how long it took.
func (m *Metrics) ObserveRequest(method string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// UpdateSystemMetrics samples the CPU and memory usage of the current process
// every SystemInterval until ctx is done.
func (m *Metrics) UpdateSystemMetrics(ctx context.Context) {
	if m.config.SystemInterval <= 0 {
		return
	}
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		log.WithError(err).Warn("process metrics are unavailable")
		return
	}

	ticker := time.NewTicker(m.config.SystemInterval)
	defer ticker.Stop()
	for {
		m.sampleProcess(ctx, proc)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Metrics) sampleProcess(ctx context.Context, proc *process.Process) {
	if percent, err := proc.CPUPercentWithContext(ctx); err == nil {
		m.cpuUsage.Set(percent)
	}
	if info, err := proc.MemoryInfoWithContext(ctx); err == nil {
		m.memoryUsage.Set(float64(info.RSS))
	}
}
