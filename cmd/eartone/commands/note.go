package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/audio/pcm"
	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/music"
)

var (
	noteFlags    synthFlags
	noteOut      string
	noteDuration time.Duration
)

var noteCmd = &cobra.Command{
	Use:   "note <pitch|frequency>",
	Short: "Render a single note",
	Long: `Render one piano note to a WAV file.

The argument is a catalog pitch (C3..C6, sharps written as C#4) or a
frequency in hertz.

Examples:
  eartone note A4
  eartone note 261.63 --duration 2s -o middle-c.wav
  eartone note C#5 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		c, err := noteFlags.composer(cfg)
		if err != nil {
			return err
		}

		freq, name, err := parseNote(args[0])
		if err != nil {
			return err
		}
		dur := noteDuration
		if dur == 0 {
			dur = c.Layout().NoteDuration
		}
		tone, err := c.Synth().Tone(freq, dur, c.Layout().Amplitude)
		if err != nil {
			return err
		}

		path := noteOut
		if path == "" {
			path = name + ".wav"
		}
		if err := writeWAV(path, tone.PCM(), c.Synth().Format()); err != nil {
			return err
		}
		cli.PrintSuccess("Wrote %s (%s, %d samples)", path, cli.FormatDuration(tone.Duration()), tone.Len())
		return nil
	},
}

// parseNote resolves a pitch name or a frequency in hertz.
func parseNote(arg string) (freq float64, name string, err error) {
	p, perr := music.PitchByName(arg)
	if perr == nil {
		return p.Frequency, p.Name, nil
	}
	f, ferr := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(arg), "hz"), 64)
	if ferr != nil {
		return 0, "", perr
	}
	return f, strconv.FormatFloat(f, 'f', -1, 64) + "Hz", nil
}

// writeWAV encodes samples into a WAV file at path.
func writeWAV(path string, samples []int16, f pcm.Format) error {
	data, err := wav.Marshal(samples, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func init() {
	noteFlags.register(noteCmd)
	noteCmd.Flags().StringVarP(&noteOut, "output", "o", "", "output file (default <Pitch>.wav)")
	noteCmd.Flags().DurationVar(&noteDuration, "duration", 0, "note length (default from preset, 1s)")
	rootCmd.AddCommand(noteCmd)
}
