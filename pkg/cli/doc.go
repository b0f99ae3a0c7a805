// Package cli provides the terminal helpers shared by the eartone commands.
//
// This package includes:
//   - Output formatting (YAML, JSON, styled tables)
//   - Print helpers for status lines
//   - Preset file loading (YAML/JSON)
//   - Human-readable durations and byte sizes
//
// Example usage:
//
//	cli.Output(summary, cli.OutputOptions{
//	    Format: cli.FormatTable,
//	})
package cli
