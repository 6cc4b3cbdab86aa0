package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jsairdrop/pangocheck/internal/depcheck"
	"github.com/jsairdrop/pangocheck/internal/output"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show which required native libraries resolve on this system",
	Long: `Probe each required native library (pango, gobject, gdk-pixbuf,
cairo) through the platform's standard shared-library name resolution
and report the outcome per library.

This does not change the process environment; use 'check' for the full
availability verdict.`,
	RunE: runProbe,
}

// probeReport is the structured output of the probe command.
type probeReport struct {
	Platform  string                 `yaml:"platform"  json:"platform"`
	Libraries []depcheck.ProbeStatus `yaml:"libraries" json:"libraries"`
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	statuses := depcheck.Probe()

	if output.OutputFormat == output.FormatText {
		for _, s := range statuses {
			mark := "✓"
			if !s.Found {
				mark = "✗"
			}
			fmt.Printf("%s %-11s (%s)\n", mark, s.Key, strings.Join(s.Variants, ", "))
		}
		return nil
	}
	return output.Print(probeReport{Platform: runtime.GOOS, Libraries: statuses})
}
