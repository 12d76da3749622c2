package sexptree

import (
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sexptree")

// Document is a parsed tree together with the buffer its offsets refer to.
type Document struct {
	Tree   *Tree
	Source []byte
	Stats  Stats
}

// Parse runs the parser over src until it finishes, growing the arena
// through the configured Allocator whenever a step asks for more room.
//
// When the parse fails the partial Document is returned along with the
// error, so callers can still inspect what was built before the failure.
func Parse(src []byte, opts ...Option) (*Document, error) {
	o := buildOptions(opts)

	tree, err := NewTree(o.Allocator.Alloc(o.InitialCapacity))
	if err != nil {
		return nil, err
	}
	p := NewParser(src, tree, opts...)
	doc := &Document{Tree: tree, Source: src}

	for {
		step, err := p.Step()
		if err != nil {
			doc.Stats = p.Stats()
			return doc, fmt.Errorf("parse: %w", err)
		}

		switch step.Status {
		case StatusNeedsCapacity:
			if err := grow(tree, o.Allocator, step.Capacity); err != nil {
				doc.Stats = p.Stats()
				return doc, fmt.Errorf("parse: %w", err)
			}
		case StatusFinished:
			doc.Stats = p.Stats()
			log.Debugf("parsed %d bytes into %d nodes (%d steps, %d growths)",
				len(src), tree.Len(), doc.Stats.Steps, doc.Stats.Growths)
			return doc, nil
		}
	}
}

func grow(tree *Tree, alloc Allocator, capacity int) error {
	storage := alloc.Alloc(capacity)
	if len(storage) < capacity {
		return protocolErrorf("grow", "allocator returned %d nodes, %d requested", len(storage), capacity)
	}
	oldCap := tree.Cap()
	old, err := tree.Migrate(storage)
	if err != nil {
		alloc.Release(storage)
		return err
	}
	alloc.Release(old)
	log.Debugf("arena grown from %d to %d nodes", oldCap, tree.Cap())
	return nil
}

// Release returns the arena storage to alloc. The document must not be
// used afterwards.
func (d *Document) Release(alloc Allocator) {
	if d.Tree == nil {
		return
	}
	alloc.Release(d.Tree.nodes)
	d.Tree.nodes = nil
	d.Tree.count = 0
	d.Tree = nil
}

// Node returns the node at id.
func (d *Document) Node(id NodeID) Node {
	return d.Tree.Node(id)
}

// Kind returns the kind of the node at id.
func (d *Document) Kind(id NodeID) Kind {
	return d.Tree.Node(id).Kind
}

// Text returns the source bytes covered by id.
func (d *Document) Text(id NodeID) []byte {
	return d.Tree.Text(d.Source, id)
}
