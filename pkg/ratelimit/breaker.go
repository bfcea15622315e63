package ratelimit

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrCircuitOpen is returned by Allow when the circuit is open and the
// recovery timeout has not yet elapsed. Callers can distinguish "upstream
// is down" from upstream request errors via errors.Is.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state.
type State string

const (
	// StateClosed passes calls through and counts consecutive failures.
	StateClosed State = "closed"

	// StateOpen rejects calls without contacting upstream.
	StateOpen State = "open"

	// StateHalfOpen admits exactly one trial call.
	StateHalfOpen State = "half_open"
)

// Default circuit breaker tuning.
const (
	DefaultFailureThreshold = 5
	DefaultRecoveryTimeout  = 60 * time.Second
)

// Prometheus metrics for circuit breaker activity.
var (
	breakerTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_breaker_transitions_total",
		Help: "Total circuit breaker state transitions by target state",
	}, []string{"to"})

	breakerRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scryfall_breaker_rejections_total",
		Help: "Total calls rejected while the circuit was open",
	})
)

// Breaker is a circuit breaker guarding upstream calls. Transitions are
// the only mutation point and are guarded by a mutex, so concurrent
// callers cannot double-admit a half-open trial or lose failure counts.
type Breaker struct {
	mu sync.Mutex

	state           State
	failures        int
	lastTransition  time.Time
	trialInFlight   bool
	failureLimit    int
	recoveryTimeout time.Duration

	// now is injectable for tests.
	now func() time.Time
}

// NewBreaker creates a circuit breaker in the Closed state.
// Non-positive arguments fall back to the defaults.
func NewBreaker(failureThreshold int, recoveryTimeout time.Duration) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = DefaultFailureThreshold
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = DefaultRecoveryTimeout
	}
	return &Breaker{
		state:           StateClosed,
		failureLimit:    failureThreshold,
		recoveryTimeout: recoveryTimeout,
		now:             time.Now,
	}
}

// Allow gates an upstream call. It returns nil when the call may proceed,
// or ErrCircuitOpen when the circuit is open. When the recovery timeout has
// elapsed the breaker moves to HalfOpen and admits a single trial call;
// further callers are rejected until the trial reports its outcome.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if b.now().Sub(b.lastTransition) < b.recoveryTimeout {
			breakerRejectionsTotal.Inc()
			return ErrCircuitOpen
		}
		b.transition(StateHalfOpen)
		b.trialInFlight = true
		return nil
	case StateHalfOpen:
		if b.trialInFlight {
			breakerRejectionsTotal.Inc()
			return ErrCircuitOpen
		}
		b.trialInFlight = true
		return nil
	}
	return nil
}

// RecordSuccess reports a successful upstream call. In Closed state it
// resets the consecutive-failure counter; in HalfOpen it closes the circuit.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	if b.state == StateHalfOpen {
		b.trialInFlight = false
		b.transition(StateClosed)
	}
}

// RecordFailure reports a failed upstream call. Reaching the failure
// threshold in Closed state opens the circuit; a HalfOpen trial failure
// reopens it and restarts the recovery timer.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.failureLimit {
			b.transition(StateOpen)
		}
	case StateHalfOpen:
		b.trialInFlight = false
		b.transition(StateOpen)
	case StateOpen:
		// Late failure report from a call admitted before opening.
		// Ignored: extending the recovery window would let stragglers
		// keep the circuit open past the configured timeout.
	}
}

// Abort reports that an admitted call was abandoned by its caller before
// an upstream outcome was known. It frees a HalfOpen trial slot so the
// next caller can run the trial, and never counts as a failure: an
// abandoned request says nothing about upstream health.
func (b *Breaker) Abort() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.trialInFlight = false
	}
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Failures returns the current consecutive-failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// transition moves the breaker to a new state. Callers must hold b.mu.
func (b *Breaker) transition(to State) {
	b.state = to
	b.lastTransition = b.now()
	breakerTransitionsTotal.WithLabelValues(string(to)).Inc()
}
