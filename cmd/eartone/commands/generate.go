package commands

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/cli"
	"github.com/haivivi/eartone/pkg/library"
	"github.com/haivivi/eartone/pkg/music"
)

var (
	genFlags        synthFlags
	genOut          string
	genS3Bucket     string
	genS3Prefix     string
	genS3Endpoint   string
	genS3Region     string
	genWorkers      int
	genPitches      []string
	genIntervals    []string
	genKinds        []string
	genSkipExisting bool
	genManifest     string
)

// generateResult is the output of the generate command.
type generateResult struct {
	library.Summary `json:",inline" yaml:",inline"`
	Output          string `json:"output" yaml:"output"`
}

func (r generateResult) Tables() []cli.Table {
	return []cli.Table{{
		Title:  "Generation summary",
		Header: []string{"FIELD", "VALUE"},
		Rows: [][]string{
			{"run", r.RunID},
			{"output", r.Output},
			{"notes", strconv.Itoa(r.Notes)},
			{"intervals", strconv.Itoa(r.Intervals)},
			{"skipped", strconv.Itoa(r.Skipped)},
			{"written", cli.FormatBytes(r.Bytes)},
			{"elapsed", cli.FormatDuration(r.Elapsed)},
		},
	}}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the note and interval library",
	Long: `Render every note of the catalog, then every interval from every base
pitch: harmonic, melodic ascending and melodic descending. Combinations
whose second note falls outside C3..C6 are skipped with a warning.

Files are written to --out (notes/ and intervals/ are created inside it),
or to an S3 bucket when --s3-bucket or output.s3.bucket is set. S3
credentials come from output.s3.access_key/secret_key, then from
AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY; without either, uploads are
anonymous and only succeed on publicly writable buckets. Each file is
recorded in the manifest (see 'eartone manifest').

Examples:
  eartone generate --out library
  eartone generate --pitch C4 --pitch G4 --kind melodic
  eartone generate --s3-bucket ear-training --s3-prefix v1 --workers 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}

		filter, err := parseFilter(genPitches, genIntervals, genKinds)
		if err != nil {
			return err
		}
		c, err := genFlags.composer(cfg)
		if err != nil {
			return err
		}

		s3cfg := cfg.Output.S3
		if genS3Bucket != "" {
			s3cfg.Bucket = genS3Bucket
		}
		if genS3Prefix != "" {
			s3cfg.Prefix = genS3Prefix
		}
		if genS3Endpoint != "" {
			s3cfg.Endpoint = genS3Endpoint
		}
		if genS3Region != "" {
			s3cfg.Region = genS3Region
		}
		dir := cfg.Output.Dir
		if cmd.Flags().Changed("out") {
			dir = genOut
			if genS3Bucket == "" {
				s3cfg.Bucket = ""
			}
		}
		store, err := openStore(dir, s3cfg)
		if err != nil {
			return err
		}

		manifest, closeManifest, err := openManifest(cfg, genManifest)
		if err != nil {
			return err
		}
		defer closeManifest()

		workers := genWorkers
		if workers <= 0 {
			workers = cfg.Generate.Workers
		}
		g := &library.Generator{
			Composer:     c,
			Store:        store,
			Manifest:     manifest,
			Workers:      workers,
			SkipExisting: genSkipExisting,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		sum, err := g.Run(ctx, library.Jobs(filter))
		if err != nil {
			return err
		}
		return output(generateResult{Summary: sum, Output: store.Location("")})
	},
}

// parseFilter resolves catalog names given on the command line.
func parseFilter(pitches, intervals, kinds []string) (library.Filter, error) {
	var f library.Filter
	for _, name := range pitches {
		p, err := music.PitchByName(name)
		if err != nil {
			return f, err
		}
		f.Pitches = append(f.Pitches, p)
	}
	for _, name := range intervals {
		iv, err := music.IntervalByName(name)
		if err != nil {
			return f, err
		}
		f.Intervals = append(f.Intervals, iv)
	}
	for _, name := range kinds {
		k, err := library.ParseKind(name)
		if err != nil {
			return f, err
		}
		f.Kinds = append(f.Kinds, k)
	}
	return f, nil
}

func init() {
	genFlags.register(generateCmd)
	generateCmd.Flags().StringVar(&genOut, "out", "", "output directory (default output.dir from config)")
	generateCmd.Flags().StringVar(&genS3Bucket, "s3-bucket", "", "write to this S3 bucket instead of a directory (credentials: output.s3.* or AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY)")
	generateCmd.Flags().StringVar(&genS3Prefix, "s3-prefix", "", "object key prefix")
	generateCmd.Flags().StringVar(&genS3Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL (MinIO, R2)")
	generateCmd.Flags().StringVar(&genS3Region, "s3-region", "", "S3 region")
	generateCmd.Flags().IntVar(&genWorkers, "workers", 0, "concurrent renders (default generate.workers from config)")
	generateCmd.Flags().StringSliceVar(&genPitches, "pitch", nil, "only these base pitches (repeatable)")
	generateCmd.Flags().StringSliceVar(&genIntervals, "interval", nil, "only these intervals (repeatable)")
	generateCmd.Flags().StringSliceVar(&genKinds, "kind", nil, "only these kinds: note, harmonic, melodic (repeatable)")
	generateCmd.Flags().BoolVar(&genSkipExisting, "skip-existing", false, "leave files that already exist untouched")
	generateCmd.Flags().StringVar(&genManifest, "manifest", "", "manifest backend: badger, memory or none (default manifest.backend from config)")
	rootCmd.AddCommand(generateCmd)
}
