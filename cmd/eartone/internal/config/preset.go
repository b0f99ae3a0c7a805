package config

import (
	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/piano"
)

// Preset overrides synthesis and timing settings. Preset files are YAML or
// JSON; fields they omit keep their defaults.
//
//	synth:
//	  detune: 0.0002
//	  hammer: {duration: 8ms, gain: 0.2, decay: 5}
//	layout:
//	  note_duration: 1500ms
//	  gap: 400ms
type Preset struct {
	Synth  piano.Config    `yaml:"synth" json:"synth"`
	Layout interval.Layout `yaml:"layout" json:"layout"`
}

// DefaultPreset returns the built-in settings.
func DefaultPreset() Preset {
	return Preset{Synth: piano.DefaultConfig(), Layout: interval.DefaultLayout()}
}

// LoadPreset reads path over the defaults. An empty path returns the
// defaults.
func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	if path == "" {
		return p, nil
	}
	if err := cli.LoadFile(path, &p); err != nil {
		return Preset{}, err
	}
	if err := p.Synth.Validate(); err != nil {
		return Preset{}, err
	}
	if err := p.Layout.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
