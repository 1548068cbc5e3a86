package tempo

import (
	"k8s.io/utils/clock"
)

// Session binds an Estimator to a clock so callers can register taps
// without sourcing timestamps themselves. Pass clock.RealClock{} for real
// usage and a fake clock in tests.
type Session struct {
	clock     clock.PassiveClock
	estimator *Estimator
}

// NewSession creates a tapping session backed by the given clock.
func NewSession(cl clock.PassiveClock) *Session {
	return &Session{
		clock:     cl,
		estimator: NewEstimator(),
	}
}

// Tap registers a tap at the current clock time.
func (s *Session) Tap() {
	s.estimator.RegisterTap(s.clock.Now())
}

// Estimator exposes the underlying estimator for reads and manual writes.
func (s *Session) Estimator() *Estimator {
	return s.estimator
}
