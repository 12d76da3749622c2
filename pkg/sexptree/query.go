package sexptree

import "fmt"

// Navigation helpers for the common "(key value...)" shape, where a group's
// first child is a word naming it.

// Head returns the text of the first child of id if that child is a word.
// Example: Head of (at 100 50) is "at".
func (d *Document) Head(id NodeID) (string, bool) {
	first := d.Tree.Node(id).FirstChild
	if !first.Valid() || d.Kind(first) != KindWord {
		return "", false
	}
	return string(d.Text(first)), true
}

// Find searches the children of id for a word equal to key or a group whose
// head is key, and returns the first match.
// Example: Find(footprint, "at") finds (at 100 50) inside (footprint ... (at 100 50)).
func (d *Document) Find(id NodeID, key string) (NodeID, bool) {
	for _, c := range d.Tree.Children(id) {
		switch d.Kind(c) {
		case KindWord:
			if string(d.Text(c)) == key {
				return c, true
			}
		case KindGroup:
			if head, ok := d.Head(c); ok && head == key {
				return c, true
			}
		}
	}
	return None, false
}

// FindAll returns every child group of id whose head is key.
func (d *Document) FindAll(id NodeID, key string) []NodeID {
	var results []NodeID
	for _, c := range d.Tree.Children(id) {
		if d.Kind(c) != KindGroup {
			continue
		}
		if head, ok := d.Head(c); ok && head == key {
			results = append(results, c)
		}
	}
	return results
}

// Items returns the children of id after the first one (the key).
// Example: Items of (layers F.Cu B.Cu) is [F.Cu B.Cu].
func (d *Document) Items(id NodeID) []NodeID {
	children := d.Tree.Children(id)
	if len(children) <= 1 {
		return []NodeID{}
	}
	return children[1:]
}

// WordAt returns the text of the child at index, which must be a word.
// Index 0 is the key, 1 the first value, and so on.
func (d *Document) WordAt(id NodeID, index int) (string, error) {
	if d.Kind(id) == KindWord {
		return "", fmt.Errorf("expected group, got word")
	}
	children := d.Tree.Children(id)
	if index < 0 || index >= len(children) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(children))
	}
	c := children[index]
	if d.Kind(c) != KindWord {
		return "", fmt.Errorf("expected word at index %d, got %s", index, d.Kind(c))
	}
	return string(d.Text(c)), nil
}
