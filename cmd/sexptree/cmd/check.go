package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/sexptree/pkg/crosscheck"
	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate files and cross-check the trees",
	Long: `Parse each file and report syntax errors with their line and column.
Files that parse are compared node by node against an independent grammar;
any disagreement is reported as a failure. With --verbose a second,
third-party reader is consulted for the top-level shape and its differences
are shown as notes.

Examples:
  sexptree check board.kicad_pcb
  sexptree check -v lib/*.kicad_sym`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ref, err := crosscheck.NewReference()
	if err != nil {
		return err
	}

	failed := 0
	for _, filename := range args {
		if !checkFile(ref, filename) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func checkFile(ref *crosscheck.Reference, filename string) bool {
	doc, err := parseFile(filename)
	defer release(doc)
	if err != nil {
		fmt.Printf("FAIL %v\n", err)
		return false
	}

	mismatches, err := crosscheck.Check(ref, doc)
	if err != nil {
		// groups left open or auto-closed are outside the reference grammar
		fmt.Printf("ok   %s (%d nodes, reference check skipped)\n", filename, doc.Stats.Nodes)
		log.Debugf("%s: %s", filename, err)
		return true
	}
	if len(mismatches) > 0 {
		fmt.Printf("FAIL %s: %d mismatches against reference\n", filename, len(mismatches))
		for _, m := range mismatches {
			fmt.Printf("  %s\n", m)
		}
		return false
	}

	fmt.Printf("ok   %s (%d nodes)\n", filename, doc.Stats.Nodes)
	if verbose {
		printShapeNotes(doc)
	}
	return true
}

// printShapeNotes reports where the chewxy reader sees a different top level.
func printShapeNotes(doc *sexptree.Document) {
	shape, err := crosscheck.ChewxyShape(doc.Source)
	if err != nil {
		fmt.Printf("  note: %v\n", err)
		return
	}
	for _, m := range crosscheck.CompareShape(doc, shape) {
		fmt.Printf("  note: %s\n", m)
	}
}
