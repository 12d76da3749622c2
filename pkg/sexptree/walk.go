package sexptree

// Children returns the children of id in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	var children []NodeID
	for c := t.Node(id).FirstChild; c.Valid(); c = t.Node(c).NextSibling {
		children = append(children, c)
	}
	return children
}

// Depth returns how many groups enclose id. Root and top-level nodes are at
// depth 0.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for n := t.Node(id); n.Kind != KindRoot && n.Parent != Root; n = t.Node(n.Parent) {
		depth++
	}
	return depth
}

// Walk visits every node below Root in document order. The depth passed to
// fn is 0 for top-level nodes. Returning false from fn skips the children of
// that node.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	type frame struct {
		id    NodeID
		depth int
	}
	var stack []frame
	if first := t.Node(Root).FirstChild; first.Valid() {
		stack = append(stack, frame{first, 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(f.id)
		// sibling first so the child is popped next
		if n.NextSibling.Valid() {
			stack = append(stack, frame{n.NextSibling, f.depth})
		}
		if fn(f.id, f.depth) && n.FirstChild.Valid() {
			stack = append(stack, frame{n.FirstChild, f.depth + 1})
		}
	}
}
