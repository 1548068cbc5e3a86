package tempo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clock "k8s.io/utils/clock/testing"
)

func TestSessionTapsReadTheClock(t *testing.T) {
	t.Parallel()

	fc := clock.NewFakeClock(testBase)
	s := NewSession(fc)

	for i := 0; i < 6; i++ {
		s.Tap()
		fc.Step(500 * time.Millisecond)
	}

	e := s.Estimator()
	require.Len(t, e.History(), 5)
	assert.InDelta(t, 120.0, e.GetBPM(), 1e-9)
	assert.Equal(t, 1.0, e.GetConfidence())
}

func TestSessionIdleTimeout(t *testing.T) {
	t.Parallel()

	fc := clock.NewFakeClock(testBase)
	s := NewSession(fc)

	for i := 0; i < 4; i++ {
		s.Tap()
		fc.Step(400 * time.Millisecond)
	}
	require.NotEmpty(t, s.Estimator().History())

	// Walk away mid-session, then come back.
	fc.Step(10 * time.Second)
	s.Tap()

	assert.Empty(t, s.Estimator().History())
	assert.Equal(t, 0.0, s.Estimator().GetConfidence())
}
