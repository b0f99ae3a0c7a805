package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/music"
)

// catalogResult is the output of the catalog command.
type catalogResult struct {
	Pitches   []music.Pitch    `json:"pitches" yaml:"pitches"`
	Intervals []music.Interval `json:"intervals" yaml:"intervals"`
}

func (r catalogResult) Tables() []cli.Table {
	pitches := cli.Table{Title: "Pitches", Header: []string{"#", "NAME", "FREQUENCY"}}
	for _, p := range r.Pitches {
		pitches.Rows = append(pitches.Rows, []string{
			strconv.Itoa(p.Index), p.Name, fmt.Sprintf("%.2f Hz", p.Frequency),
		})
	}
	intervals := cli.Table{Title: "Intervals", Header: []string{"NAME", "SEMITONES", "FILE NAME"}}
	for _, iv := range r.Intervals {
		intervals.Rows = append(intervals.Rows, []string{
			iv.Name, strconv.Itoa(iv.Semitones), iv.Slug(),
		})
	}
	return []cli.Table{pitches, intervals}
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List pitches and intervals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(catalogResult{
			Pitches:   music.Pitches(),
			Intervals: music.Intervals(),
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
