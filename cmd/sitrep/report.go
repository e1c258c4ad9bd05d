// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"sitrep-cli/internal/config"
	"sitrep-cli/pkg/report"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	formatAuto     = "auto"
	formatText     = "text"
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

var (
	formatFlag  string
	columnsFlag int
	widthFlag   int
	addFlag     []string
	allFlag     bool
)

// runReport builds the report from config plus flags and writes it in the
// requested format.
func runReport(cmd *cobra.Command, _ []string) error {
	cfg := effectiveConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sitrep"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	r, err := report.New(reportOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	if allFlag {
		for _, h := range (report.BuildInfoImporter{}).Modules() {
			if err := r.Registry().Add([]any{h}); err != nil {
				return err
			}
		}
	}

	out := cmd.OutOrStdout()
	switch resolveFormat(formatFlag, r.Interactive()) {
	case formatText:
		fmt.Fprintln(out, r.Text())
	case formatHTML:
		fmt.Fprintln(out, r.HTML())
	case formatMarkdown:
		rendered, err := renderMarkdown(r.Markdown(), r.TextWidth())
		if err != nil {
			// Glamour failures degrade to the raw markdown.
			rendered = r.Markdown()
		}
		fmt.Fprint(out, rendered)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s, %s, or %s)",
			formatFlag, formatAuto, formatText, formatHTML, formatMarkdown)
	}
	return nil
}

// reportOptions translates config and flags into report options. Flags
// win over config values.
func reportOptions(cfg *config.Config, logger *log.Logger) []report.Option {
	columns := cfg.Columns
	if columnsFlag > 0 {
		columns = columnsFlag
	}
	width := cfg.TextWidth
	if widthFlag > 0 {
		width = widthFlag
	}

	additional := append([]string{}, cfg.Additional...)
	additional = append(additional, addFlag...)

	return []report.Option{
		report.WithCore(toAny(cfg.Core)...),
		report.WithOptional(toAny(cfg.Optional)...),
		report.WithAdditional(toAny(additional)...),
		report.WithColumns(columns),
		report.WithTextWidth(width),
		report.WithLogger(logger),
	}
}

// resolveFormat maps the --format flag to a concrete format: auto picks
// text for terminals and HTML for pipes (notebook-style embedding).
func resolveFormat(flag string, interactive bool) string {
	if flag != formatAuto {
		return flag
	}
	if interactive {
		return formatText
	}
	return formatHTML
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
