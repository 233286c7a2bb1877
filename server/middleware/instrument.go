package middleware

import (
	"net/http"
	"time"

	"netuitive/metric"
)

// Instrument records every request into an Observer.
type Instrument struct {
	observer metric.Observer
}

// NewInstrument creates a new Instrument middleware.
func NewInstrument(o metric.Observer) *Instrument {
	return &Instrument{observer: o}
}

// Intercept measures the request and reports it once the handler returns.
func (i *Instrument) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newStatusWriter(w)
		next.ServeHTTP(rw, r)
		i.observer.ObserveRequest(r.Method, rw.statusCode, time.Since(start))
	})
}
