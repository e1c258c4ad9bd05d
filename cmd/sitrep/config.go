// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"sitrep-cli/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configCmd is the `sitrep config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sitrep configuration",
	Long: `Manage sitrep configuration.

Configuration is stored in:
  - Linux: ~/.config/sitrep/config.toml
  - macOS: ~/Library/Application Support/sitrep/config.toml
  - Windows: %APPDATA%\sitrep\config.toml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfigFile(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.FilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
}

// showConfig prints the effective configuration as TOML.
func showConfig(cmd *cobra.Command) error {
	data, err := toml.Marshal(effectiveConfig())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// initConfigFile writes the default config file, refusing to overwrite.
func initConfigFile(cmd *cobra.Command) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+path)
	return nil
}
