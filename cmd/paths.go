package cmd

import (
	"fmt"
	"runtime"

	"github.com/jsairdrop/pangocheck/internal/gtkpath"
	"github.com/jsairdrop/pangocheck/internal/output"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Prepare the native library search path and report the result",
	Long: `Run the search-path preparation step on its own: locate a GTK
runtime install and register it with the loader (Windows) or extend
DYLD_LIBRARY_PATH (macOS). No-op on other platforms.

The changes apply to this process only and last until it exits.`,
	RunE: runPaths,
}

// pathsReport is the structured output of the paths command.
type pathsReport struct {
	Platform string `yaml:"platform"        json:"platform"`
	Added    string `yaml:"added,omitempty" json:"added,omitempty"`
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	added := gtkpath.Prepare()

	if output.OutputFormat == output.FormatText {
		if added == "" {
			fmt.Printf("no search-path changes made on %s\n", runtime.GOOS)
		} else {
			fmt.Printf("added to native library search path: %s\n", added)
		}
		return nil
	}
	return output.Print(pathsReport{Platform: runtime.GOOS, Added: added})
}
