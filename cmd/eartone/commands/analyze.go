package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/audio/spectrum"
	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/music"
)

// analyzeResult is the output of the analyze command.
type analyzeResult struct {
	File            string `json:"file" yaml:"file"`
	spectrum.Report `json:",inline" yaml:",inline"`
	NearestPitch    string `json:"nearest_pitch,omitempty" yaml:"nearest_pitch,omitempty"`
}

func (r analyzeResult) Tables() []cli.Table {
	return []cli.Table{{
		Title:  r.File,
		Header: []string{"PROPERTY", "VALUE"},
		Rows: [][]string{
			{"sample rate", strconv.Itoa(r.SampleRate) + " Hz"},
			{"samples", strconv.Itoa(r.Samples)},
			{"duration", cli.FormatDuration(r.Duration)},
			{"peak", fmt.Sprintf("%d (%.1f dBFS)", r.Peak, r.PeakDBFS)},
			{"rms", fmt.Sprintf("%.4f", r.RMS)},
			{"dominant", fmt.Sprintf("%.1f Hz", r.DominantHz)},
			{"nearest pitch", r.NearestPitch},
		},
	}}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.wav>",
	Short: "Print level and pitch statistics of a WAV file",
	Long: `Decode a 16-bit mono WAV file and report its length, peak and RMS
level, and the dominant frequency with the nearest catalog pitch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		a, err := wav.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		r := analyzeResult{File: args[0], Report: spectrum.Analyze(a.Samples, a.SampleRate)}
		if p, ok := music.Nearest(r.DominantHz); ok {
			r.NearestPitch = p.Name
		}
		return output(r)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
