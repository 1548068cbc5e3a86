package tempo

import (
	"sync"
	"time"

	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/utils"
)

// Tempo limits and the tap acceptance window. These are fixed policy: a
// tap implying more than 300 BPM or less than 30 BPM is treated as noise.
const (
	MinBPM = 30.0
	MaxBPM = 300.0

	// DefaultBPM is the estimate before any taps have been registered.
	DefaultBPM = 120.0

	minValidInterval = 0.2 // seconds, one beat at MaxBPM
	maxValidInterval = 2.0 // seconds, one beat at MinBPM

	maxHistorySize = 12
)

// TapSample is a single accepted tap: when it landed and how long after the
// previous tap it arrived.
type TapSample struct {
	Timestamp time.Time
	Interval  float64 // seconds since the previous tap
}

// Estimator turns a stream of irregular tap timestamps into a smoothed BPM
// estimate with a confidence signal. It keeps a bounded window of recent
// inter-tap intervals, clusters them by similarity, and blends the tempo
// implied by the best-supported cluster into the running estimate.
//
// All methods are safe for use from multiple goroutines, but taps are
// expected to arrive as a single ordered stream (e.g. a UI event handler).
type Estimator struct {
	mu         sync.Mutex
	bpm        float64
	confidence float64
	lastTap    time.Time
	history    []TapSample
}

// NewEstimator creates an Estimator at the default tempo with an empty
// tap window.
func NewEstimator() *Estimator {
	logger := logger.GetProjectLogger()
	logger.Debugf("Tap tempo estimator created")

	return &Estimator{
		bpm:     DefaultBPM,
		history: make([]TapSample, 0, maxHistorySize),
	}
}

// RegisterTap feeds one tap into the estimator. Timestamps must come from a
// steady clock and never run backwards; time.Time carries a monotonic
// reading when taken with time.Now, so differences are immune to wall
// clock adjustments.
//
// Taps closer than 0.2s or further apart than 2.0s are discarded without
// touching the estimate. A gap longer than 2.0s additionally drops the
// stale window and zeroes confidence: the user has started a new phrase,
// but the tempo they already dialed in is kept.
func (e *Estimator) RegisterTap(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.lastTap
	e.lastTap = now

	if prev.IsZero() {
		return
	}

	gap := now.Sub(prev).Seconds()
	if gap >= minValidInterval && gap <= maxValidInterval {
		if len(e.history) >= maxHistorySize {
			e.history = e.history[1:]
		}
		e.history = append(e.history, TapSample{Timestamp: now, Interval: gap})
		e.update()
	}

	if gap > maxValidInterval {
		e.history = e.history[:0]
		e.confidence = 0
	}
}

// update recomputes the estimate from the current window. With fewer than
// two samples there is nothing to cluster and the estimate is left alone.
func (e *Estimator) update() {
	if len(e.history) < 2 {
		return
	}

	clusters := clusterIntervals(e.history)
	dom := dominant(clusters)

	targetBPM := 60.0 / dom.interval
	e.confidence = dom.weight

	// The blend leans hard on the new target while the window is sparse or
	// the taps disagree, and gains inertia as the window fills with
	// consistent intervals.
	historyFill := float64(len(e.history)) / maxHistorySize
	smoothing := utils.Lerp(0.8, 0.2, historyFill*e.confidence)

	e.bpm = utils.Clamp(utils.Lerp(e.bpm, targetBPM, smoothing), MinBPM, MaxBPM)
}

// GetBPM returns the current estimate, always within [MinBPM, MaxBPM].
func (e *Estimator) GetBPM() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bpm
}

// GetConfidence returns the share of the window backing the current
// estimate, in [0, 1]. Zero until two taps agree.
func (e *Estimator) GetConfidence() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.confidence
}

// SetBPM overwrites the estimate directly, for manual fine tuning. The
// value is clamped; the tap window and confidence are untouched and the
// next blend starts from the value set here.
func (e *Estimator) SetBPM(bpm float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bpm = utils.Clamp(bpm, MinBPM, MaxBPM)
}

// History returns a copy of the accepted-tap window, oldest first.
func (e *Estimator) History() []TapSample {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]TapSample, len(e.history))
	copy(out, e.history)
	return out
}

// Reset returns the estimator to its initial state, as if the session had
// just started.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.bpm = DefaultBPM
	e.confidence = 0
	e.lastTap = time.Time{}
	e.history = e.history[:0]
}
