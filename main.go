// Command nodegraph is a terminal node-graph editor with undoable fill and
// select modes, plus a random graph generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nodegraph/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "nodegraph",
		Short:         "Draw and connect nodes in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML config file (NODEGRAPH_* environment variables override it)")

	root.AddCommand(newEditCmd(&configPath), newGenerateCmd(&configPath))
	return root
}

// loadConfig reads the file and environment, lets apply copy flag values
// in, then validates the result.
func loadConfig(path string, apply func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if apply != nil {
		apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
