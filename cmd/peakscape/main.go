// Command peakscape prints the hierarchy of peak or valley regions
// found in one column of CSV data.
//
// Examples:
//
//	peakscape tree data.csv
//	cat data.csv | peakscape tree
//	peakscape tree --valleys -d ';' -f 2 data.csv
//	peakscape filter --max-size 5 data.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Shared flags, bound in init.
var (
	flagValleys   bool
	flagDelimiter string
	flagField     int
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "peakscape",
	Short: "Hierarchical peak and valley analysis of numeric sequences",
	Long: `peakscape reads one column of numbers from a CSV file (or stdin)
and organizes every peak or valley region into a nesting hierarchy.

Regions are written in slice notation: "5:10" spans indices 5 to 9.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagValleys, "valleys", "v", false, "analyze valleys instead of peaks")
	rootCmd.PersistentFlags().StringVarP(&flagDelimiter, "delimiter", "d", ",", "CSV field delimiter")
	rootCmd.PersistentFlags().IntVarP(&flagField, "field", "f", 1, "1-based CSV column to read")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(filterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "peakscape:", err)
		os.Exit(1)
	}
}
