package cmd

import (
	"fmt"
	"os"

	"github.com/jsairdrop/pangocheck/internal/depcheck"
	"github.com/jsairdrop/pangocheck/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the PDF export dependency check",
	Long: `Widen the native library search path, probe the required libraries,
then load Pango and call its version query. Prints a success line or a
boxed diagnostic with install instructions.

Exits 0 when PDF export is usable, 1 otherwise.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	res := depcheck.Run()

	if output.OutputFormat == output.FormatText {
		fmt.Println(res.Message)
	} else if err := output.Print(res); err != nil {
		return err
	}

	if !res.Available {
		os.Exit(1)
	}
	return nil
}
