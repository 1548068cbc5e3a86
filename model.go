package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/keys"
	"github.com/robmorgan/pulse/rhythm"
	"github.com/robmorgan/pulse/tempo"
	"k8s.io/utils/clock"
)

type model struct {
	session    *tempo.Session
	metronome  *rhythm.Metronome
	ticker     *rhythm.Ticker
	config     config.PulseConfig
	confidence progress.Model
	key        keys.Key
	flash      float64 // beat flash level, decays towards 0 each frame
	lastBPM    float64
	quitting   bool
}

func newModel() model {
	// Init the pulse config
	config, err := config.NewPulseConfig()
	if err != nil {
		panic("error creating config")
	}

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	session := tempo.NewSession(clock.RealClock{})
	bpm := session.Estimator().GetBPM()

	metronome := rhythm.NewMetronome()
	metronome.SetBeatsPerBar(config.BeatsPerBar)

	key, err := keys.Lookup("8A")
	if err != nil {
		panic("error loading the key wheel")
	}

	return model{
		session:    session,
		metronome:  metronome,
		ticker:     rhythm.NewTicker(clock.RealClock{}, bpm),
		config:     config,
		confidence: p,
		key:        key,
		lastBPM:    bpm,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), waitForBeat(m.ticker.Beats()))
}
