package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/cmd/eartone/internal/config"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/piano"
)

// synthFlags are shared by every command that renders audio.
type synthFlags struct {
	preset    string
	seed      uint64
	amplitude float64
}

func (f *synthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "YAML or JSON file overriding synthesis and timing settings")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for reproducible output (0 = random)")
	cmd.Flags().Float64Var(&f.amplitude, "amplitude", 0, "per-note peak amplitude in (0, 1] (default from config)")
}

// composer builds a synth and interval composer from the preset, the
// config file and the flags, in increasing priority.
func (f *synthFlags) composer(cfg *config.Config) (*interval.Composer, error) {
	presetPath := f.preset
	if presetPath == "" {
		presetPath = cfg.Generate.Preset
	}
	p, err := config.LoadPreset(presetPath)
	if err != nil {
		return nil, fmt.Errorf("load preset: %w", err)
	}
	if cfg.Generate.Amplitude > 0 {
		p.Layout.Amplitude = cfg.Generate.Amplitude
	}
	if f.amplitude != 0 {
		p.Layout.Amplitude = f.amplitude
	}

	var opts []piano.Option
	if f.seed != 0 {
		opts = append(opts, piano.WithSeed(f.seed))
	}
	synth, err := piano.New(p.Synth, opts...)
	if err != nil {
		return nil, err
	}
	return interval.NewComposer(synth, p.Layout)
}
