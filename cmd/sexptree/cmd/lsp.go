package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/sexptree/pkg/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run a language server on stdin/stdout",
	Long: `Run a Language Server Protocol server on stdin/stdout. It publishes a
diagnostic for unbalanced parentheses or excessive nesting and offers folding
ranges for multi-line groups. The global parser flags apply to every
document.

Examples:
  sexptree lsp
  sexptree lsp --max-depth 256`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	rootCmd.AddCommand(lspCmd)
}

func runLSP(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}
	log.Infof("starting language server %s", rootCmd.Version)
	return lsp.NewServer(rootCmd.Version, opts...).RunStdio()
}
