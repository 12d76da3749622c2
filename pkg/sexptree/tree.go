package sexptree

import (
	"fmt"
	"math"
)

// NodeID addresses a node by its position in the arena. IDs stay valid
// across migrations.
type NodeID int32

const (
	// Root is the sentinel node every tree starts with.
	Root NodeID = 0
	// None is the absent link. It never collides with a real index.
	None NodeID = -1
)

// Valid reports whether id refers to a node rather than None.
func (id NodeID) Valid() bool {
	return id >= 0
}

// NoOffset is the End of a group whose ')' has not been seen.
const NoOffset = -1

// maxNodes is the largest node count a NodeID can address.
var maxNodes = math.MaxInt32

// GrowthMargin is the headroom (in nodes) a step requires before it does any
// work. One step creates at most one node.
const GrowthMargin = 2

// Kind tells roots, groups and words apart.
type Kind uint8

const (
	KindRoot Kind = iota
	KindGroup
	KindWord
)

var kindNames = map[Kind]string{
	KindRoot:  "Root",
	KindGroup: "Group",
	KindWord:  "Word",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one syntactic unit. Start and End are a half-open byte range into
// the parsed buffer: the atom for a Word, "(" through ")" for a Group.
type Node struct {
	Kind        Kind
	Parent      NodeID
	FirstChild  NodeID
	NextSibling NodeID
	Start       int
	End         int
}

// Closed reports whether a group has seen its ')'. Words are always closed.
func (n Node) Closed() bool {
	return n.End != NoOffset
}

// Tree is a contiguous, caller-grown node store. The tree never allocates:
// when it runs low it only reports how much room it needs (NeedsGrowth) and
// waits for Migrate.
type Tree struct {
	nodes []Node
	count int
}

// NewTree adopts storage as the arena and writes the Root node at index 0.
// The capacity of the tree is len(storage).
func NewTree(storage []Node) (*Tree, error) {
	if len(storage) < 1 {
		return nil, protocolErrorf("new tree", "storage must hold at least the root node")
	}
	storage[Root] = Node{
		Kind:        KindRoot,
		Parent:      Root,
		FirstChild:  None,
		NextSibling: None,
		Start:       0,
		End:         NoOffset,
	}
	return &Tree{nodes: storage, count: 1}, nil
}

// Len returns the number of nodes created so far, Root included.
func (t *Tree) Len() int {
	return t.count
}

// Cap returns the current capacity of the backing storage.
func (t *Tree) Cap() int {
	return len(t.nodes)
}

// Node returns a copy of the node at id. It panics if id is out of range.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[:t.count][id]
}

// Text returns src[Start:End] for id, or nil for the root and for groups that
// never closed.
func (t *Tree) Text(src []byte, id NodeID) []byte {
	n := t.Node(id)
	if n.Kind == KindRoot || !n.Closed() {
		return nil
	}
	return src[n.Start:n.End]
}

// NeedsGrowth reports whether the remaining capacity is within GrowthMargin
// and, if so, the capacity the caller must provide next.
func (t *Tree) NeedsGrowth() (int, bool) {
	if len(t.nodes)-t.count > GrowthMargin {
		return 0, false
	}
	return (len(t.nodes) + 1) * 2, true
}

// Migrate copies the existing nodes into storage, adopts it as the arena and
// returns the previous backing storage so the caller can release it.
func (t *Tree) Migrate(storage []Node) ([]Node, error) {
	if len(storage) < t.count {
		return nil, protocolErrorf("migrate", "storage holds %d nodes, tree has %d", len(storage), t.count)
	}
	if len(storage) > 0 && len(t.nodes) > 0 && &storage[0] == &t.nodes[0] {
		return nil, protocolErrorf("migrate", "storage is already the active arena")
	}
	old := t.nodes
	copy(storage, old[:t.count])
	t.nodes = storage
	return old, nil
}

func (t *Tree) create(kind Kind, parent NodeID, start, end int) (NodeID, error) {
	if t.count >= len(t.nodes) {
		return None, protocolErrorf("create", "arena full (%d/%d); growth request not honored", t.count, len(t.nodes))
	}
	if t.count >= maxNodes {
		return None, protocolErrorf("create", "node limit %d reached", maxNodes)
	}
	id := NodeID(t.count)
	t.nodes[id] = Node{
		Kind:        kind,
		Parent:      parent,
		FirstChild:  None,
		NextSibling: None,
		Start:       start,
		End:         end,
	}
	t.count++
	return id, nil
}

func (t *Tree) setFirstChild(id, child NodeID) error {
	n := &t.nodes[id]
	if n.FirstChild.Valid() {
		return protocolErrorf("link", "node %d already has first child %d", id, n.FirstChild)
	}
	n.FirstChild = child
	return nil
}

func (t *Tree) setNextSibling(id, sibling NodeID) error {
	n := &t.nodes[id]
	if n.NextSibling.Valid() {
		return protocolErrorf("link", "node %d already has next sibling %d", id, n.NextSibling)
	}
	n.NextSibling = sibling
	return nil
}

func (t *Tree) setEnd(id NodeID, end int) {
	t.nodes[id].End = end
}

// Equal reports whether both trees hold the same nodes at the same indices.
// Capacity is ignored.
func (t *Tree) Equal(other *Tree) bool {
	if t.count != other.count {
		return false
	}
	for i := 0; i < t.count; i++ {
		if t.nodes[i] != other.nodes[i] {
			return false
		}
	}
	return true
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{nodes: %d, cap: %d}", t.count, len(t.nodes))
}
