package sexptree

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Dump renders the tree one node per line, indented by depth, with kinds,
// offsets and word text.
func (d *Document) Dump() string {
	var sb strings.Builder
	sb.WriteString("Root\n")
	d.Tree.Walk(func(id NodeID, depth int) bool {
		n := d.Node(id)
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString(n.Kind.String())
		sb.WriteString(" [")
		sb.WriteString(strconv.Itoa(n.Start))
		sb.WriteByte(':')
		if n.Closed() {
			sb.WriteString(strconv.Itoa(n.End))
		} else {
			sb.WriteByte('-')
		}
		sb.WriteByte(']')
		if n.Kind == KindWord {
			sb.WriteByte(' ')
			sb.Write(d.Text(id))
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// Format renders the document in canonical form: single spaces inside
// groups, one top-level form per line. Groups that never closed are written
// without their ')'.
func (d *Document) Format() string {
	var sb strings.Builder
	for i, id := range d.Tree.Children(Root) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		d.format(&sb, id)
	}
	return sb.String()
}

func (d *Document) format(sb *strings.Builder, id NodeID) {
	n := d.Node(id)
	if n.Kind == KindWord {
		sb.Write(d.Text(id))
		return
	}
	sb.WriteByte('(')
	for i, c := range d.Tree.Children(id) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		d.format(sb, c)
	}
	if n.Closed() {
		sb.WriteByte(')')
	}
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Start    int         `json:"start"`
	End      *int        `json:"end,omitempty"`
	Text     string      `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toJSON(Root))
}

func (d *Document) toJSON(id NodeID) *jsonNode {
	n := d.Node(id)
	jn := &jsonNode{
		Kind:  n.Kind.String(),
		Start: n.Start,
	}
	if n.Kind != KindRoot && n.Closed() {
		end := n.End
		jn.End = &end
	}
	if n.Kind == KindWord {
		jn.Text = string(d.Text(id))
	}
	for _, c := range d.Tree.Children(id) {
		jn.Children = append(jn.Children, d.toJSON(c))
	}
	return jn
}
