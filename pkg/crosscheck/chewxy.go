package crosscheck

import (
	"fmt"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

// ChewxyShape reads src with github.com/chewxy/sexp and reports, for each
// top-level form, whether it is an atom. That reader understands strings
// and comments, so on input that uses '"' or ';' the shapes can legitimately
// differ; treat its result as advisory.
func ChewxyShape(src []byte) ([]bool, error) {
	sexps, err := sexp.ParseString(string(src))
	if err != nil {
		return nil, fmt.Errorf("chewxy: %w", err)
	}
	shape := make([]bool, 0, len(sexps))
	for _, s := range sexps {
		shape = append(shape, s.IsLeaf())
	}
	return shape, nil
}

// CompareShape checks the top level of doc against a ChewxyShape result.
func CompareShape(doc *sexptree.Document, shape []bool) []Mismatch {
	var out []Mismatch
	top := doc.Tree.Children(sexptree.Root)
	if len(top) != len(shape) {
		out = append(out, Mismatch{
			Path:    "root",
			Message: fmt.Sprintf("expected %d top-level forms, got %d", len(shape), len(top)),
		})
	}
	for i := 0; i < min(len(top), len(shape)); i++ {
		isWord := doc.Kind(top[i]) == sexptree.KindWord
		if isWord != shape[i] {
			out = append(out, Mismatch{
				Path:    fmt.Sprint(i),
				Offset:  doc.Node(top[i]).Start,
				Message: fmt.Sprintf("expected atom=%v, got %s", shape[i], doc.Kind(top[i])),
			})
		}
	}
	return out
}
