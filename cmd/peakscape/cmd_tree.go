package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lindbaek/peakscape/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the nesting tree of peak or valley regions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

// styles returns the header and body styles, plain when --no-color.
func styles() (header, body lipgloss.Style) {
	if flagNoColor {
		return lipgloss.NewStyle(), lipgloss.NewStyle()
	}
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	body = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	return header, body
}

func runTree(cmd *cobra.Command, args []string) error {
	data, err := readColumn(args)
	if err != nil {
		return err
	}

	t, err := tree.New(data, mode())
	if err != nil {
		return err
	}

	header, body := styles()
	fmt.Println(header.Render(fmt.Sprintf("%d %s regions in %d values", t.Len(), mode(), len(data))))
	if t.Len() == 0 {
		return nil
	}
	fmt.Println(body.Render(t.String()))

	return nil
}
