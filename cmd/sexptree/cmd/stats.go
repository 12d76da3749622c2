package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show parser statistics for a file",
	Long: `Parse a file and show how much work it took: steps, arena growths,
node counts by kind, and the deepest nesting reached.

Examples:
  sexptree stats board.kicad_pcb
  sexptree stats --initial-capacity 1 board.kicad_pcb`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	filename := args[0]
	doc, err := parseFile(filename)
	defer release(doc)
	if err != nil {
		return err
	}

	s := doc.Stats
	fmt.Printf("File:      %s\n", filename)
	fmt.Printf("Bytes:     %d\n", len(doc.Source))
	fmt.Printf("Steps:     %d\n", s.Steps)
	fmt.Printf("Growths:   %d\n", s.Growths)
	fmt.Printf("Capacity:  %d\n", doc.Tree.Cap())
	fmt.Printf("Nodes:     %d\n", s.Nodes)
	fmt.Printf("  Groups:  %d\n", s.Groups)
	fmt.Printf("  Words:   %d\n", s.Words)
	fmt.Printf("Max depth: %d\n", s.MaxDepth)
	return nil
}
