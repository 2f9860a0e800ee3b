package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayraychen2011/tui-breaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Write the commented default YAML configuration to stdout.

Redirect it to a file to customize, then edit the values you want
to change. Settings are read from ~/.breaker/configs/breaker.yaml
or ./configs/breaker.yaml, or from the path given to --config.

Examples:
  breaker config
  breaker config > configs/breaker.yaml
  breaker config > ~/.breaker/configs/breaker.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.DefaultBreakerYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing configuration: %v\n", err)
		os.Exit(1)
	}
}
