package rhythm

import (
	"context"
	"time"

	"github.com/robmorgan/pulse/logger"
	"k8s.io/utils/clock"
)

// Ticker fires a beat event every 60/bpm seconds, for driving haptics or
// click playback. A tempo change always stops the pending timer and arms
// a fresh one with the new period; a running timer is never adjusted in
// place.
type Ticker struct {
	clock   clock.Clock
	period  time.Duration
	beats   chan time.Time
	retempo chan time.Duration
}

// NewTicker creates a Ticker for the given tempo. Pass clock.RealClock{}
// for real usage.
func NewTicker(cl clock.Clock, bpm float64) *Ticker {
	return &Ticker{
		clock:   cl,
		period:  BeatPeriod(bpm),
		beats:   make(chan time.Time, 1),
		retempo: make(chan time.Duration, 1),
	}
}

// BeatPeriod converts a tempo to the time between beats.
func BeatPeriod(bpm float64) time.Duration {
	return time.Duration(60.0 / bpm * float64(time.Second))
}

// Beats returns the channel beat instants are delivered on.
func (t *Ticker) Beats() <-chan time.Time {
	return t.beats
}

// Retempo reschedules the ticker for a new tempo. If several tempo changes
// land before the loop picks one up, the latest wins.
func (t *Ticker) Retempo(bpm float64) {
	select {
	case <-t.retempo:
	default:
	}
	t.retempo <- BeatPeriod(bpm)
}

// Run delivers beats until the context is cancelled.
func (t *Ticker) Run(ctx context.Context) {
	logger := logger.GetProjectLogger()
	logger.Printf("Beat ticker started at %v, period=%v", t.clock.Now(), t.period)

	timer := t.clock.NewTimer(t.period)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Printf("Beat ticker shutdown")
			return
		case period := <-t.retempo:
			t.period = period
			if !timer.Stop() {
				select {
				case <-timer.C():
				default:
				}
			}
			timer = t.clock.NewTimer(t.period)
		case now := <-timer.C():
			// a slow consumer drops beats rather than lagging the timeline
			select {
			case t.beats <- now:
			default:
			}
			timer.Reset(t.period)
		}
	}
}
