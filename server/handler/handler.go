// Package handler answers HEAD and GET requests and counts them on statsd.
package handler

import (
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"netuitive/metric"
)

// Counter names, relative to the configured statsd prefix.
const (
	HeadRequestsCounter = "head.requests.counter"
	GetRequestsCounter  = "get.requests.counter"
)

const contentType = "text/html"

// Handler serves every path with a fixed page.
type Handler struct {
	emitter metric.Emitter
}

// New creates a new instance of Handler that reports to e.
func New(e metric.Emitter) *Handler {
	return &Handler{
		emitter: e,
	}
}

// ServeHTTP handles HEAD and GET on any path. Other methods get 501.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodHead:
		h.head(w)
	case http.MethodGet:
		h.get(w, r)
	default:
		http.Error(w, fmt.Sprintf("Unsupported method ('%s')", r.Method), http.StatusNotImplemented)
	}
}

func (h *Handler) head(w http.ResponseWriter) {
	writeHeader(w)
	h.emitter.Incr(HeadRequestsCounter)
}

// get echoes the raw request target. It is written as is, without HTML
// escaping, so the page reflects whatever the client sent.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	writeHeader(w)
	if _, err := io.WriteString(w, "<p>URL Path: "+requestTarget(r)+"</p>"); err != nil {
		log.WithError(err).Debug("failed to write response body")
	}
	h.emitter.Incr(GetRequestsCounter)
}

func writeHeader(w http.ResponseWriter) {
	w.Header().Set("Content-type", contentType)
	w.WriteHeader(http.StatusOK)
}

func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
