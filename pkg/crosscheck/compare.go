package crosscheck

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

// Mismatch is one disagreement between the arena and a reference parse.
type Mismatch struct {
	Path    string // child indices from the root, e.g. "0/2/1"
	Offset  int
	Message string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s @%d: %s", m.Path, m.Offset, m.Message)
}

// Compare walks doc and file side by side and reports every node whose
// kind or byte range differs.
func Compare(doc *sexptree.Document, file *File) []Mismatch {
	var out []Mismatch
	compareChildren(doc, sexptree.Root, file.Exprs, "", &out)
	return out
}

func compareChildren(doc *sexptree.Document, parent sexptree.NodeID, exprs []*Expr, path string, out *[]Mismatch) {
	children := doc.Tree.Children(parent)
	if len(children) != len(exprs) {
		offset := doc.Node(parent).Start
		*out = append(*out, Mismatch{
			Path:    pathOrRoot(path),
			Offset:  offset,
			Message: fmt.Sprintf("expected %d children, got %d", len(exprs), len(children)),
		})
	}

	n := min(len(children), len(exprs))
	for i := 0; i < n; i++ {
		id, expr := children[i], exprs[i]
		p := path + strconv.Itoa(i)
		node := doc.Node(id)

		wantKind := sexptree.KindWord
		if expr.List != nil {
			wantKind = sexptree.KindGroup
		}
		if node.Kind != wantKind {
			*out = append(*out, Mismatch{p, expr.Start(), fmt.Sprintf("expected %s, got %s", wantKind, node.Kind)})
			continue
		}
		if node.Start != expr.Start() || node.End != expr.End() {
			*out = append(*out, Mismatch{p, expr.Start(),
				fmt.Sprintf("expected range [%d:%d], got [%d:%d]", expr.Start(), expr.End(), node.Start, node.End)})
		}
		if expr.List != nil {
			compareChildren(doc, id, expr.List.Exprs, p+"/", out)
		}
	}
}

func pathOrRoot(path string) string {
	if path == "" {
		return "root"
	}
	return path[:len(path)-1]
}

// Check parses doc.Source with ref and compares the result against doc.
// The error is non-nil only when ref rejects the input.
func Check(ref *Reference, doc *sexptree.Document) ([]Mismatch, error) {
	file, err := ref.Parse(doc.Source)
	if err != nil {
		return nil, err
	}
	return Compare(doc, file), nil
}
