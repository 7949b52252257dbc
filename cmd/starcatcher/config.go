package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.starcatcher/stars.yaml or ./configs/stars.yaml to customize the game,
or pass it explicitly with --config.

With --resolved, prints the configuration that would actually be used after
searching --config, the user directory, ./configs and the defaults.

Examples:
  starcatcher config > configs/stars.yaml
  starcatcher config --resolved --config ./my-stars.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadStars(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
