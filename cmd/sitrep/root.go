// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sitrep.
package cmd

import (
	"context"
	"fmt"
	"os"

	"sitrep-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug diagnostics
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedCfg is the configuration resolved by initRootConfig; nil when
	// loading failed, in which case defaults apply.
	loadedCfg *config.Config

	// rootCmd represents the base command; running it without a
	// subcommand prints the environment report.
	rootCmd = &cobra.Command{
		Use:   "sitrep",
		Short: "Report the runtime environment and component versions",
		Long: TitleStyle.Render("sitrep") + SubtitleStyle.Render(" - environment & version reporter") + `

sitrep prints a reproducible snapshot of the executing environment:
OS, CPU count, total RAM, the Go runtime version, and the versions of
a configurable set of components resolved from the binary's build
information. Paste it at the top of an analysis session or bug report.

` + SubtitleStyle.Render("Examples:") + `
  sitrep                         Print the report (text on a terminal)
  sitrep --format html           Emit an HTML table
  sitrep --add cobra --add viper Report extra components
  sitrep --all                   Report every module in the binary
  sitrep config init             Create a default configuration file`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sitrep/config.toml)")

	// Report flags
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", formatAuto, "output format: auto, text, html, or markdown")
	rootCmd.Flags().IntVarP(&columnsFlag, "columns", "c", 0, "table cell pairs per row (overrides config)")
	rootCmd.Flags().IntVarP(&widthFlag, "width", "w", 0, "plain-text wrap width (overrides config)")
	rootCmd.Flags().StringArrayVarP(&addFlag, "add", "a", nil, "additional component to report (repeatable)")
	rootCmd.Flags().BoolVar(&allFlag, "all", false, "report every dependency module of this binary")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Surface config loading problems but keep going on defaults;
		// the report must be producible regardless.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	loadedCfg = cfg
}

// effectiveConfig returns the loaded configuration or the shipped
// defaults when loading failed.
func effectiveConfig() *config.Config {
	if loadedCfg != nil {
		return loadedCfg
	}
	return config.DefaultConfig()
}
