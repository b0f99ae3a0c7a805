package commands

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/library"
)

var (
	manifestBackend string
	manifestRun     string
)

// manifestResult is the output of the manifest command.
type manifestResult struct {
	Entries []library.Entry `json:"entries" yaml:"entries"`
}

func (r manifestResult) Tables() []cli.Table {
	t := cli.Table{
		Title:  strconv.Itoa(len(r.Entries)) + " files",
		Header: []string{"PATH", "KIND", "SAMPLES", "SIZE", "PEAK", "RUN", "CREATED"},
	}
	for _, e := range r.Entries {
		run := e.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		t.Rows = append(t.Rows, []string{
			e.Path,
			e.Kind,
			strconv.Itoa(e.Samples),
			cli.FormatBytes(int64(e.Bytes)),
			strconv.FormatFloat(e.Peak, 'f', 3, 64),
			run,
			e.CreatedAt.Local().Format(time.DateTime),
		})
	}
	return []cli.Table{t}
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List the files recorded by previous generate runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		m, closeManifest, err := openManifest(cfg, manifestBackend)
		if err != nil {
			return err
		}
		defer closeManifest()

		res := manifestResult{Entries: []library.Entry{}}
		if m == nil {
			return output(res)
		}
		for e, err := range m.List(cmd.Context()) {
			if err != nil {
				return err
			}
			if manifestRun != "" && e.RunID != manifestRun {
				continue
			}
			res.Entries = append(res.Entries, e)
		}
		return output(res)
	},
}

func init() {
	manifestCmd.Flags().StringVar(&manifestBackend, "manifest", "", "manifest backend: badger, memory or none (default manifest.backend from config)")
	manifestCmd.Flags().StringVar(&manifestRun, "run", "", "only entries written by this run ID")
	rootCmd.AddCommand(manifestCmd)
}
