package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/cmd/eartone/internal/config"
	"github.com/haivivi/eartone/pkg/cli"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	configDir    string

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "eartone",
	Short: "Piano tone and interval generator for ear training",
	Long: `eartone - synthesize piano-like notes and two-note intervals as WAV files.

The catalog spans C3 to C6 (37 pitches) and twelve intervals from the minor
second to the octave. Each interval is rendered harmonically (both notes
together) and melodically (ascending and descending).

Output files:
  notes/<Pitch>.wav
  intervals/<Base>_<Interval>_harmonic.wav
  intervals/<Base>_<Interval>_melodic_<ascending|descending>.wav

Configuration is stored in the OS config directory:
  macOS:   ~/Library/Application Support/eartone/
  Linux:   ~/.config/eartone/
  Windows: %AppData%/eartone/

Examples:
  # Render the whole library into ./library
  eartone generate --out library

  # Render one interval
  eartone interval C4 "Perfect 5th" --melodic -o fifth.wav

  # Preview server
  eartone serve --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "yaml", "output format: yaml, json or table")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $"+config.EnvDir+" or the OS config dir)")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// configLoadErr stores the error from config loading for deferred reporting.
var configLoadErr error

func initConfig() {
	globalConfig, configLoadErr = loadConfig()
}

func loadConfig() (*config.Config, error) {
	if configDir != "" {
		return config.LoadFrom(configDir)
	}
	return config.Load()
}

// GetConfig returns the global configuration.
// Returns an error if the config could not be loaded (e.g., HOME not set).
func GetConfig() (*config.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// output writes result in the --format selected on the command line.
func output(result any) error {
	f, err := cli.ParseFormat(formatOutput)
	if err != nil {
		return err
	}
	return cli.Output(result, cli.OutputOptions{Format: f})
}
