package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

var log = commonlog.GetLogger("sexptree.cli")

var (
	// Global flags
	verbose         bool
	initialCapacity int
	maxDepth        int
	unclosed        string
	usePool         bool
)

var rootCmd = &cobra.Command{
	Use:   "sexptree",
	Short: "Incremental s-expression parser and tree inspector",
	Long: `Parse parenthesized token files (KiCad boards, footprints, symbol
libraries, Lisp-like configs) into a flat node arena and inspect the result.

Examples:
  sexptree parse board.kicad_pcb                      # Print the node tree
  sexptree parse --format json part.kicad_mod         # Nested JSON
  sexptree check *.kicad_sym                          # Validate files
  sexptree find board.kicad_pcb footprint             # List (footprint ...) groups
  sexptree watch --unclosed leave notes.sexp          # Re-parse on every save`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&initialCapacity, "initial-capacity", sexptree.DefaultInitialCapacity,
		"initial arena capacity in nodes")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", sexptree.DefaultMaxDepth,
		"maximum nesting depth, counting the root")
	rootCmd.PersistentFlags().StringVar(&unclosed, "unclosed", sexptree.UnclosedReject.String(),
		"what to do with groups still open at end of input: reject, leave or close")
	rootCmd.PersistentFlags().BoolVar(&usePool, "pool", false,
		"reuse arena storage through a pooled allocator")
}

func configureLogging() {
	verbosity := 0
	if verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
}
