package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Logger logs requests and responses.
type Logger struct {
	logger log.FieldLogger
}

// NewLogger creates a new Logger middleware writing to the standard logger.
func NewLogger() *Logger {
	return &Logger{logger: log.StandardLogger()}
}

// NewLoggerWith creates a new Logger middleware writing to l.
func NewLoggerWith(l log.FieldLogger) *Logger {
	return &Logger{logger: l}
}

// Intercept logs the request and response.
func (l *Logger) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newStatusWriter(w)
		next.ServeHTTP(rw, r)

		entry := l.logger.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.RequestURI,
			"remote":   r.RemoteAddr,
			"status":   rw.statusCode,
			"duration": time.Since(start),
		})
		if rw.statusCode >= 400 {
			entry.Info("request fails")
		} else {
			entry.Debug("request succeed")
		}
	})
}
