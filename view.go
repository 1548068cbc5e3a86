package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/ease"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bpmStyle  = lipgloss.NewStyle().Bold(true)
	appStyle  = lipgloss.NewStyle().Margin(1, 2, 0, 2)

	lowConfidence  = mustHex("#D9534F")
	highConfidence = mustHex("#5CB85C")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (m model) View() string {
	est := m.session.Estimator()
	bpm := est.GetBPM()
	conf := est.GetConfidence()

	// the readout shifts from red to green as the taps agree
	tint := lowConfidence.BlendLuv(highConfidence, conf).Hex()
	readout := bpmStyle.Copy().Foreground(lipgloss.Color(tint)).Render(fmt.Sprintf("%5.1f BPM", bpm))

	// the beat dot flares on every beat and eases back out
	dot := "○"
	if ease.OutQuart(m.flash) > 0.5 {
		dot = "●"
	}

	var s string
	s += fmt.Sprintf("%s %s\n\n", dot, readout)
	s += dimStyle.Render(fmt.Sprintf("half %5.1f   double %5.1f", bpm/2, bpm*2)) + "\n\n"
	s += fmt.Sprintf("Taps: %d   Bar: %s\n\n", len(est.History()), m.metronome.GetMarker(time.Now()))
	s += fmt.Sprintf("Key: %s (%s)   mixes with %s\n\n",
		m.key.Code(), m.key.Name, strings.Join(m.key.CompatibleCodes()[1:], " "))
	s += "Confidence " + m.confidence.ViewAs(conf) + "\n"
	s += helpStyle.Render("(space) tap ([,]) BPM -/+ (k) key (m) relative (r) reset\n\nPress q or ctrl+c to exit\n")

	if m.quitting {
		s += "\n"
	}
	return appStyle.Render(s)
}
