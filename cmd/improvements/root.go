package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/improvements/internal/catalog"
	"github.com/nao1215/improvements/internal/config"
	"github.com/nao1215/improvements/internal/log"
	"github.com/nao1215/improvements/internal/model"
	"github.com/nao1215/improvements/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for improvements.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Print the catalog of planned generator improvements",
		Long: `improvements prints the built-in catalog of planned improvements for the
Fabric mod generator. Ideas are grouped by category and numbered within
each category, followed by the total number of ideas.

Examples:
  # Print the catalog
  improvements

  # Print the catalog without emoji markers
  improvements --ascii

  # Output the catalog as JSON, YAML or Markdown
  improvements --json
  improvements --yaml
  improvements --markdown`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --yaml and --markdown)")
	cmd.Flags().BoolP("yaml", "y", false,
		"Output YAML report (mutually exclusive with --json and --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --yaml)")
	cmd.Flags().Bool("color", false,
		"Color category headers and the total line when writing to a terminal")
	cmd.Flags().Bool("ascii", false,
		"Use ASCII markers instead of emoji")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd prints the built-in catalog.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runReport(cfg, catalog.Default(), cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.YAMLReport, err = cmd.Flags().GetBool("yaml")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.Color, err = cmd.Flags().GetBool("color")
	if err != nil {
		return nil, err
	}

	cfg.ASCII, err = cmd.Flags().GetBool("ascii")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// newReportWriter returns the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch cfg.Format() {
	case config.FormatJSON:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case config.FormatYAML:
		return report.NewYAMLWriter(output)
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		theme := report.DefaultTheme
		if cfg.ASCII {
			theme = report.ASCIITheme
		}
		return report.NewSimpleWriter(output,
			report.WithTheme(theme),
			report.WithColor(cfg.Color),
		)
	}
}

// runReport writes the catalog to output in the configured format.
func runReport(cfg *config.Config, c *model.Catalog, output io.Writer, logger *slog.Logger) error {
	logger.Debug("rendering catalog",
		"format", cfg.Format().String(),
		"categories", c.Len(),
		"items", c.Total(),
	)

	n, err := newReportWriter(cfg, output).Write(c)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("report written", "bytes", n)
	return nil
}
