package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/sexptree/pkg/source"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse a file every time it changes",
	Long: `Parse a file, then keep watching it and print a one-line status after
every save until interrupted.

Examples:
  sexptree watch board.kicad_pcb
  sexptree watch --unclosed leave notes.sexp`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if _, err := parseOptions(); err != nil {
		return err
	}

	src, err := source.Load(filename)
	if err != nil {
		return err
	}
	printStatus(filename, src)

	w, err := source.NewWatcher(filename)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", w.Path())
	err = w.Run(ctx, func(data []byte) error {
		printStatus(filename, data)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printStatus(filename string, src []byte) {
	doc, err := parseSource(filename, src)
	defer release(doc)
	if err != nil {
		fmt.Printf("FAIL %v\n", err)
		return
	}
	fmt.Printf("ok   %s (%d nodes, %d groups, depth %d)\n",
		filename, doc.Stats.Nodes, doc.Stats.Groups, doc.Stats.MaxDepth)
}
