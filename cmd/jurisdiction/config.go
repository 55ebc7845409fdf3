package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/mycoria/jurisdiction/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDefaultsCmd)

	configDefaultsCmd.Flags().StringVarP(&configOut, "out", "o", "", "write defaults to new JSON or YAML file instead of stdout")
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration",
	}

	configDefaultsCmd = &cobra.Command{
		Use:   "defaults",
		Short: "Print or write the default configuration",
		Args:  cobra.NoArgs,
		RunE:  configDefaults,
	}

	configOut string
)

func configDefaults(cmd *cobra.Command, args []string) error {
	// Validate before printing.
	c, err := makeDefaultConfig().Parse()
	if err != nil {
		return fmt.Errorf("default config is invalid: %w", err)
	}

	if configOut != "" {
		if err := c.SaveTo(configOut); err != nil {
			return err
		}
		slog.Info("default config written", "file", configOut)
		return nil
	}

	data, err := yaml.Marshal(c.Store)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data)) // CLI output.
	return nil
}

func makeDefaultConfig() config.Store {
	return config.Store{
		API: config.API{
			Listen: config.DefaultAPIListen,
		},
		Log: config.Log{
			Level: "info",
		},
	}
}
