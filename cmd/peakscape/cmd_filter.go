package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lindbaek/peakscape/tree"
)

var (
	flagMinSize float64
	flagMaxSize float64
)

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "Print the outermost regions within a vertical size range",
	Long: `Filter reports every region whose vertical size (distance between
extremum and cutoff) falls inside the requested range, reduced to the
outermost representative of each main chain. Without --max-size the
bound defaults to 20% of the root region's size.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().Float64Var(&flagMinSize, "min-size", 0, "inclusive lower size bound")
	filterCmd.Flags().Float64Var(&flagMaxSize, "max-size", 0, "exclusive upper size bound (0 = 20% of root)")
}

func runFilter(cmd *cobra.Command, args []string) error {
	data, err := readColumn(args)
	if err != nil {
		return err
	}

	t, err := tree.New(data, mode())
	if err != nil {
		return err
	}

	header, body := styles()
	selected := t.Filter(tree.WithMinSize(flagMinSize), tree.WithMaxSize(flagMaxSize))
	fmt.Println(header.Render(fmt.Sprintf("%d of %d %s regions selected", len(selected), t.Len(), mode())))
	for _, s := range selected {
		fmt.Println(body.Render(fmt.Sprintf("%-9v size=%-8.4g %v", s, s.Size(), s.Subarray(data))))
	}

	return nil
}
