package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save the output to ~/.pong/pong.yaml or ./configs/pong.yaml and edit it;
keys left out keep their defaults. With --config, the given file is
validated and the merged result is printed instead.

Examples:
  pong config > ~/.pong/pong.yaml
  pong config --config ./pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfig == "" {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
