package metric

import "time"

// Emitter increments named counters on a metrics collector. Delivery is best
// effort, so there is nothing for the caller to handle.
//
//go:generate mockgen -destination=mock_emitter.go -package=metric . Emitter
type Emitter interface {
	Incr(name string)
}

// Observer records the outcome of a served HTTP request.
type Observer interface {
	ObserveRequest(method string, code int, elapsed time.Duration)
}
