package sexptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	_, err := NewTree(nil)
	require.ErrorIs(t, err, ErrProtocol)

	tree, err := NewTree(make([]Node, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 4, tree.Cap())

	root := tree.Node(Root)
	assert.Equal(t, KindRoot, root.Kind)
	assert.Equal(t, Root, root.Parent)
	assert.Equal(t, None, root.FirstChild)
	assert.Equal(t, None, root.NextSibling)
}

func TestTreeNeedsGrowth(t *testing.T) {
	tests := []struct {
		capacity int
		want     int
		wantGrow bool
	}{
		{1, 4, true},
		{2, 6, true},
		{3, 8, true},
		{4, 0, false},
		{1024, 0, false},
	}

	for _, tt := range tests {
		tree, err := NewTree(make([]Node, tt.capacity))
		require.NoError(t, err)

		got, grow := tree.NeedsGrowth()
		assert.Equal(t, tt.wantGrow, grow, "capacity %d", tt.capacity)
		assert.Equal(t, tt.want, got, "capacity %d", tt.capacity)
	}
}

func TestTreeCreateAtCapacity(t *testing.T) {
	tree, err := NewTree(make([]Node, 2))
	require.NoError(t, err)

	id, err := tree.create(KindWord, Root, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, NodeID(1), id)

	_, err = tree.create(KindWord, Root, 2, 3)
	require.ErrorIs(t, err, ErrProtocol)
	assert.Equal(t, 2, tree.Len())
}

func TestTreeLinksAreWriteOnce(t *testing.T) {
	tree, err := NewTree(make([]Node, 8))
	require.NoError(t, err)

	a, _ := tree.create(KindWord, Root, 0, 1)
	b, _ := tree.create(KindWord, Root, 2, 3)

	require.NoError(t, tree.setFirstChild(Root, a))
	require.ErrorIs(t, tree.setFirstChild(Root, b), ErrProtocol)

	require.NoError(t, tree.setNextSibling(a, b))
	require.ErrorIs(t, tree.setNextSibling(a, b), ErrProtocol)

	assert.Equal(t, []NodeID{a, b}, tree.Children(Root))
}

func TestTreeMigrate(t *testing.T) {
	doc, err := Parse([]byte("(a b (c))"))
	require.NoError(t, err)
	tree := doc.Tree

	before := make([]Node, tree.Len())
	for i := range before {
		before[i] = tree.Node(NodeID(i))
	}
	oldCap := tree.Cap()

	old, err := tree.Migrate(make([]Node, tree.Len()))
	require.NoError(t, err)
	assert.Len(t, old, oldCap)
	assert.Equal(t, len(before), tree.Cap())

	for i, want := range before {
		assert.Equal(t, want, tree.Node(NodeID(i)), "node %d", i)
	}

	_, err = tree.Migrate(make([]Node, tree.Len()-1))
	require.ErrorIs(t, err, ErrProtocol)
	assert.Equal(t, len(before), tree.Len())
}

func TestTreeMigrateRejectsActiveStorage(t *testing.T) {
	tree, err := NewTree(make([]Node, 4))
	require.NoError(t, err)
	a, err := tree.create(KindWord, Root, 0, 1)
	require.NoError(t, err)
	require.NoError(t, tree.setFirstChild(Root, a))

	_, err = tree.Migrate(tree.nodes)
	require.ErrorIs(t, err, ErrProtocol)
	_, err = tree.Migrate(tree.nodes[:tree.Len()])
	require.ErrorIs(t, err, ErrProtocol)

	assert.Equal(t, 4, tree.Cap())
	assert.Equal(t, []NodeID{a}, tree.Children(Root))
}

func TestTreeCreateStopsAtNodeLimit(t *testing.T) {
	defer func(n int) { maxNodes = n }(maxNodes)
	maxNodes = 3

	tree, err := NewTree(make([]Node, 8))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := tree.create(KindWord, Root, i, i+1)
		require.NoError(t, err)
	}

	id, err := tree.create(KindWord, Root, 2, 3)
	require.ErrorIs(t, err, ErrProtocol)
	assert.Equal(t, None, id)
	assert.Equal(t, 3, tree.Len())
}

func TestTreeText(t *testing.T) {
	src := []byte("(a (b")
	doc, err := Parse(src, WithUnclosedPolicy(UnclosedLeave))
	require.NoError(t, err)

	tree := doc.Tree
	assert.Nil(t, tree.Text(src, Root))
	assert.Equal(t, "a", string(tree.Text(src, 2)))
	// unclosed groups have no text
	assert.Nil(t, tree.Text(src, 1))
	assert.False(t, tree.Node(3).Closed())
}

func TestTreeDepthAndWalk(t *testing.T) {
	doc, err := Parse([]byte("x (a (b c) d) y"))
	require.NoError(t, err)

	var visited []string
	doc.Tree.Walk(func(id NodeID, depth int) bool {
		assert.Equal(t, depth, doc.Tree.Depth(id))
		if doc.Kind(id) == KindWord {
			visited = append(visited, string(doc.Text(id)))
		}
		return true
	})
	assert.Equal(t, []string{"x", "a", "b", "c", "d", "y"}, visited)

	var pruned []string
	doc.Tree.Walk(func(id NodeID, depth int) bool {
		if doc.Kind(id) == KindWord {
			pruned = append(pruned, string(doc.Text(id)))
		}
		return doc.Kind(id) != KindGroup
	})
	assert.Equal(t, []string{"x", "y"}, pruned)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Root", KindRoot.String())
	assert.Equal(t, "Group", KindGroup.String())
	assert.Equal(t, "Word", KindWord.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
