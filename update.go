package main

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robmorgan/pulse/keys"
)

type frameMsg time.Time

type beatMsg time.Time

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.config.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForBeat relays beat events from the scheduler into the UI loop.
func waitForBeat(beats <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		return beatMsg(<-beats)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.session.Tap()
			m.syncTempo()
		case "[":
			m.session.Estimator().SetBPM(m.session.Estimator().GetBPM() - 1)
			m.syncTempo()
		case "]":
			m.session.Estimator().SetBPM(m.session.Estimator().GetBPM() + 1)
			m.syncTempo()
		case "k":
			// step around the wheel on the same ring
			next, err := keys.Lookup(fmt.Sprintf("%d%s", m.key.Number%12+1, m.key.Ring))
			if err == nil {
				m.key = next
			}
		case "m":
			m.key = m.key.Relative()
		case "r":
			m.session.Estimator().Reset()
			m.syncTempo()
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case beatMsg:
		m.flash = 1.0
		return m, waitForBeat(m.ticker.Beats())
	case frameMsg:
		// the flash fades out over a quarter of a second
		m.flash = math.Max(0, m.flash-4.0/float64(m.config.FPS))
		return m, m.tickCmd()
	default:
		return m, nil
	}
}

// syncTempo pushes a changed estimate out to the bar timeline and the beat
// scheduler. The scheduler restarts its timer on every change rather than
// stretching the one in flight.
func (m *model) syncTempo() {
	bpm := m.session.Estimator().GetBPM()
	if bpm == m.lastBPM {
		return
	}
	m.lastBPM = bpm
	m.metronome.SetTempo(bpm)
	m.ticker.Retempo(bpm)
}
