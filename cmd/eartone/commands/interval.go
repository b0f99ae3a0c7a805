package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/library"
)

var (
	intervalFlags      synthFlags
	intervalOut        string
	intervalMelodic    bool
	intervalDescending bool
)

var intervalCmd = &cobra.Command{
	Use:   "interval <base> <interval>",
	Short: "Render a single interval",
	Long: `Render one interval recording to a WAV file.

The interval name may use spaces, underscores or dashes
("Perfect 5th", Perfect_5th, perfect-5th), or be a semitone count (7). Harmonic recordings play both
notes together; --melodic plays them one after the other, and
--descending picks the second note below the base.

Examples:
  eartone interval C4 "Perfect 5th"
  eartone interval C4 Major_3rd --melodic --descending
  eartone interval A3 octave --melodic -o octave.wav`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		c, err := intervalFlags.composer(cfg)
		if err != nil {
			return err
		}
		buf, err := c.ComposeByName(args[0], args[1], !intervalMelodic, !intervalDescending)
		if err != nil {
			return err
		}

		path := intervalOut
		if path == "" {
			path = library.IntervalFileName(buf.Base, buf.Interval, buf.Mode)
		}
		if err := writeWAV(path, buf.PCM(), c.Synth().Format()); err != nil {
			return err
		}
		cli.PrintSuccess("Wrote %s: %s to %s, %s (%s)", path, buf.Base.Name, buf.Target.Name, buf.Mode, cli.FormatDuration(buf.Duration()))
		return nil
	},
}

func init() {
	intervalFlags.register(intervalCmd)
	intervalCmd.Flags().StringVarP(&intervalOut, "output", "o", "", "output file (default <Base>_<Interval>_<mode>.wav)")
	intervalCmd.Flags().BoolVar(&intervalMelodic, "melodic", false, "play the notes one after the other")
	intervalCmd.Flags().BoolVar(&intervalDescending, "descending", false, "place the second note below the base")
	rootCmd.AddCommand(intervalCmd)
}
