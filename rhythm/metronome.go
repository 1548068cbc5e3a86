package rhythm

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/robmorgan/pulse/tempo"
	"github.com/robmorgan/pulse/utils"
)

// Metronome tracks a beat timeline for a tempo. The timeline is anchored
// at startTime and beats are numbered from 1, so beat 1 begins exactly at
// the anchor.
type Metronome struct {
	mu          sync.Mutex
	startTime   time.Time
	tempo       float64
	beatsPerBar int
}

// NewMetronome creates a new Metronome at the default tempo, anchored now.
func NewMetronome() *Metronome {
	return &Metronome{
		startTime:   time.Now(),
		tempo:       tempo.DefaultBPM,
		beatsPerBar: 4,
	}
}

func (m *Metronome) GetTempo() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tempo
}

// SetBeatsPerBar changes the bar length used for bar numbering.
func (m *Metronome) SetBeatsPerBar(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > 0 {
		m.beatsPerBar = n
	}
}

// SetTempo sets a new tempo. The anchor is adjusted so that the current
// beat number and phase are unaffected by the change; only the spacing of
// future beats moves.
func (m *Metronome) SetTempo(bpm float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bpm = utils.Clamp(bpm, tempo.MinBPM, tempo.MaxBPM)

	instant := time.Now()
	interval := beatSeconds(m.tempo)
	beat := beatNumber(instant, m.startTime, interval)
	phase := beatPhase(instant, m.startTime, interval)

	newInterval := beatSeconds(bpm)
	offset := newInterval * (phase + float64(beat) - 1)
	m.startTime = instant.Add(-time.Duration(math.Round(offset * float64(time.Second))))
	m.tempo = bpm
}

// GetBeatInterval returns the number of seconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return beatSeconds(m.tempo)
}

// GetBeat returns the beat number at the given instant.
func (m *Metronome) GetBeat(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return beatNumber(now, m.startTime, beatSeconds(m.tempo))
}

// GetBeatPhase returns how far through the current beat the instant falls,
// in [0, 1).
func (m *Metronome) GetBeatPhase(now time.Time) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return beatPhase(now, m.startTime, beatSeconds(m.tempo))
}

// GetBeatWithinBar returns the 1-based position of the current beat in
// its bar.
func (m *Metronome) GetBeatWithinBar(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	beat := beatNumber(now, m.startTime, beatSeconds(m.tempo))
	return (beat-1)%m.beatsPerBar + 1
}

// IsDownBeat checks whether the current beat is the first beat in its bar.
func (m *Metronome) IsDownBeat(now time.Time) bool {
	return m.GetBeatWithinBar(now) == 1
}

// GetMarker returns the timeline position of the instant as "bar.beat".
func (m *Metronome) GetMarker(now time.Time) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	beat := beatNumber(now, m.startTime, beatSeconds(m.tempo))
	bar := (beat-1)/m.beatsPerBar + 1
	return fmt.Sprintf("%d.%d", bar, (beat-1)%m.beatsPerBar+1)
}

// beatSeconds calculates the length of one beat at the given tempo.
func beatSeconds(bpm float64) float64 {
	return 60.0 / bpm
}

// beatNumber calculates the 1-based beat number at an instant.
func beatNumber(instant, start time.Time, interval float64) int {
	return int(math.Floor(instant.Sub(start).Seconds()/interval)) + 1
}

// beatPhase calculates how far through its beat an instant falls.
func beatPhase(instant, start time.Time, interval float64) float64 {
	ratio := instant.Sub(start).Seconds() / interval
	return ratio - math.Floor(ratio)
}
