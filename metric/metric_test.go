package metric

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics(config Config) *Metrics {
	m := New(config)
	m.RegisterMetrics()
	return m
}

func TestObserveRequest(t *testing.T) {
	m := newTestMetrics(Config{Path: DefaultMetricsPath})

	m.ObserveRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodHead, http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodPost, http.StatusNotImplemented, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("HEAD", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "501")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.requestDuration))
}

func TestHandler(t *testing.T) {
	m := newTestMetrics(Config{Path: DefaultMetricsPath})
	m.ObserveRequest(http.MethodGet, http.StatusOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	assert.NoError(t, err)
	defer func() {
		_ = res.Body.Close()
	}()
	body, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{code="200",method="GET"} 1`)
	assert.Contains(t, string(body), "process_memory_usage_bytes")
}

func TestUpdateSystemMetrics(t *testing.T) {
	t.Run("given interval when updated then memory gauge is set", func(t *testing.T) {
		m := newTestMetrics(Config{Path: DefaultMetricsPath, SystemInterval: 10 * time.Millisecond})
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			m.UpdateSystemMetrics(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool {
			return testutil.ToFloat64(m.memoryUsage) > 0
		}, 2*time.Second, 10*time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("sampler did not stop after cancel")
		}
	})

	t.Run("given zero interval when updated then return immediately", func(t *testing.T) {
		m := newTestMetrics(Config{Path: DefaultMetricsPath})
		m.UpdateSystemMetrics(context.Background())
		assert.Equal(t, 0.0, testutil.ToFloat64(m.memoryUsage))
	})
}

func TestStopWithoutStart(t *testing.T) {
	m := newTestMetrics(Config{Path: DefaultMetricsPath})
	assert.NoError(t, m.Stop())
}
