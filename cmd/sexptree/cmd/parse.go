package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its tree",
	Long: `Parse a file and print the resulting tree. The tree format lists one
node per line with its kind and byte range, json nests children under their
group, and sexp re-emits the input in canonical single-space form.

Examples:
  sexptree parse footprint.kicad_mod
  sexptree parse --format json footprint.kicad_mod
  sexptree parse --format sexp --unclosed close broken.sexp`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree",
		"output format: tree, json or sexp")
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := parseFile(args[0])
	defer release(doc)
	if err != nil {
		return err
	}

	out, err := render(doc, parseFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func render(doc *sexptree.Document, format string) (string, error) {
	switch format {
	case "tree":
		return doc.Dump(), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(data) + "\n", nil
	case "sexp":
		return doc.Format() + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q (want tree, json or sexp)", format)
	}
}
