package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
	"github.com/OpenTraceLab/sexptree/pkg/source"
)

var findCmd = &cobra.Command{
	Use:   "find <file> <key>",
	Short: "List every (key ...) group in a file",
	Long: `Search the whole tree for groups whose first word is key and print each
one with its position.

Examples:
  sexptree find board.kicad_pcb footprint
  sexptree find part.kicad_mod pad`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	filename, key := args[0], args[1]
	doc, err := parseFile(filename)
	defer release(doc)
	if err != nil {
		return err
	}

	matches := findGroups(doc, key)
	if len(matches) == 0 {
		fmt.Printf("No (%s ...) groups in %s\n", key, filename)
		return nil
	}

	lines := source.NewLineIndex(doc.Source)
	for _, id := range matches {
		pos := lines.Locate(doc.Node(id).Start)
		fmt.Printf("%s:%s: %s\n", filename, pos, doc.Text(id))
	}
	fmt.Printf("%d match(es)\n", len(matches))
	return nil
}

// findGroups collects matches at every depth, in document order.
func findGroups(doc *sexptree.Document, key string) []sexptree.NodeID {
	var matches []sexptree.NodeID
	doc.Tree.Walk(func(id sexptree.NodeID, depth int) bool {
		if doc.Kind(id) == sexptree.KindGroup {
			if head, ok := doc.Head(id); ok && head == key {
				matches = append(matches, id)
			}
		}
		return true
	})
	return matches
}
