package cmd

import (
	"fmt"
	"os"

	"github.com/jsairdrop/pangocheck/internal/output"
	"github.com/jsairdrop/pangocheck/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pangocheck",
	Short: "Check that the native Pango runtime needed for PDF export is loadable",
	Long: `pangocheck verifies that the GTK runtime family (Pango, GObject,
gdk-pixbuf, cairo) required for PDF export is present and loadable,
and prints platform-specific install instructions when it is not.

Running pangocheck with no subcommand performs the check, prints the
diagnostic, and exits 0 when PDF export is usable, 1 otherwise.`,
	RunE: runCheck,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "text":
			output.OutputFormat = output.FormatText
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use text, yaml, or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
