// Package main is the entry point for the eartone CLI.
//
// Usage:
//
//	eartone [flags] <command> [args]
//
// Commands:
//
//	generate   - Render the note and interval library
//	note       - Render a single note
//	interval   - Render a single interval
//	catalog    - List pitches and intervals
//	analyze    - Print level and pitch statistics of a WAV file
//	manifest   - List the files recorded by previous generate runs
//	serve      - Run the preview HTTP server
//	config     - Show or edit the configuration file
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/eartone/cmd/eartone/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
