package config

import (
	"github.com/robmorgan/pulse/logger"
	"github.com/sirupsen/logrus"
)

// GetPulseConfig returns the current configuration
func GetPulseConfig() PulseConfig {
	val, _ := NewPulseConfig()
	return val
}

// PulseConfig represents options that configure the global behavior of the program
type PulseConfig struct {
	// Project logger
	Logger *logrus.Entry

	// BeatsPerBar sets the bar length used by the metronome and the
	// downbeat flash.
	BeatsPerBar int

	// FPS is the UI frame rate.
	FPS int
}

// Create a new PulseConfig object with reasonable defaults for real usage
func NewPulseConfig() (PulseConfig, error) {
	// TODO - support passing in a config file one day

	return PulseConfig{
		Logger:      logger.GetProjectLogger(),
		BeatsPerBar: 4,
		FPS:         40,
	}, nil
}
