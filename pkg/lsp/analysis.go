package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
	"github.com/OpenTraceLab/sexptree/pkg/source"
)

const diagnosticSource = "sexptree"

// Diagnose parses src and reports the syntax error, if any, as a single
// diagnostic. Positions are zero-based and count bytes.
func Diagnose(src []byte, opts ...sexptree.Option) []protocol.Diagnostic {
	_, err := sexptree.Parse(src, opts...)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	lines := source.NewLineIndex(src)
	severity := protocol.DiagnosticSeverityError
	diag := protocol.Diagnostic{
		Severity: &severity,
		Source:   strPtr(diagnosticSource),
		Message:  err.Error(),
	}

	var syntaxErr *sexptree.SyntaxError
	if errors.As(err, &syntaxErr) {
		diag.Message = syntaxErr.Err.Error()
		diag.Range = protocol.Range{
			Start: toPosition(lines.Locate(syntaxErr.Offset)),
			End:   toPosition(lines.Locate(syntaxErr.Offset + 1)),
		}
	}
	return []protocol.Diagnostic{diag}
}

// FoldingRanges returns one range per closed group that spans more than
// one line. Malformed input still folds whatever was parsed before the
// error. opts are applied as for Diagnose, except that open groups are
// always left open.
func FoldingRanges(src []byte, opts ...sexptree.Option) []protocol.FoldingRange {
	opts = append(opts[:len(opts):len(opts)], sexptree.WithUnclosedPolicy(sexptree.UnclosedLeave))
	doc, _ := sexptree.Parse(src, opts...)
	ranges := []protocol.FoldingRange{}
	if doc == nil || doc.Tree == nil {
		return ranges
	}

	lines := source.NewLineIndex(src)
	doc.Tree.Walk(func(id sexptree.NodeID, depth int) bool {
		n := doc.Node(id)
		if n.Kind != sexptree.KindGroup || !n.Closed() {
			return true
		}
		start := lines.Locate(n.Start)
		end := lines.Locate(n.End - 1)
		if end.Line > start.Line {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: protocol.UInteger(start.Line - 1),
				EndLine:   protocol.UInteger(end.Line - 1),
			})
		}
		return true
	})
	return ranges
}

func toPosition(p source.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(p.Column - 1),
	}
}
