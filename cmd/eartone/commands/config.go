package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration file",
	Long: `Show or edit config.yaml.

Keys:
  output.dir             output directory for generate
  output.s3.bucket       write generate output to this bucket
  output.s3.prefix       object key prefix
  output.s3.region       bucket region
  output.s3.endpoint     S3-compatible endpoint (MinIO, R2)
  output.s3.access_key   static credentials
  output.s3.secret_key
  generate.workers       concurrent renders
  generate.amplitude     per-note peak amplitude in (0, 1]
  generate.preset        default preset file
  manifest.backend       badger, memory or none
  serve.addr             preview server listen address

Examples:
  eartone config path
  eartone config set generate.workers 8
  eartone config show --format json`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		shown := *cfg
		if shown.Output.S3.SecretKey != "" {
			shown.Output.S3.SecretKey = "********"
		}
		return output(shown)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		fmt.Println(cfg.Path())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		if args[0] == "output.s3.secret_key" {
			fmt.Printf("Set %s\n", args[0])
		} else {
			fmt.Printf("Set %s = %s\n", args[0], args[1])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
