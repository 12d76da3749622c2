package crosscheck

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
)

func newReference(t *testing.T) *Reference {
	t.Helper()
	ref, err := NewReference()
	require.NoError(t, err)
	return ref
}

func TestReferenceParse(t *testing.T) {
	ref := newReference(t)

	file, err := ref.Parse([]byte("(a b (c))"))
	require.NoError(t, err)
	require.Len(t, file.Exprs, 1)

	top := file.Exprs[0]
	require.NotNil(t, top.List)
	assert.Equal(t, 0, top.Start())
	assert.Equal(t, 9, top.End())
	require.Len(t, top.List.Exprs, 3)
	assert.Equal(t, "a", *top.List.Exprs[0].Word)
	assert.Equal(t, 5, top.List.Exprs[2].Start())
	assert.Equal(t, 8, top.List.Exprs[2].End())
}

func TestReferenceRejectsUnbalanced(t *testing.T) {
	ref := newReference(t)
	for _, src := range []string{"(a", ")", "(a))", "((b)"} {
		_, err := ref.Parse([]byte(src))
		assert.Error(t, err, "input %q", src)
	}
}

func TestCompareAgrees(t *testing.T) {
	ref := newReference(t)
	tests := []string{
		"",
		"   ",
		"word",
		"(a b (c))",
		"()(())",
		"a(b)c",
		"(module R_0603 (layer F.Cu)\n\t(at 100 50 90))\n(x)",
	}
	for _, src := range tests {
		doc, err := sexptree.Parse([]byte(src))
		require.NoError(t, err)

		mismatches, err := Check(ref, doc)
		require.NoError(t, err)
		assert.Empty(t, mismatches, "input %q", src)
	}
}

func TestCompareRandomInputs(t *testing.T) {
	ref := newReference(t)
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		src := []byte(balancedInput(r, 4))

		doc, err := sexptree.Parse(src, sexptree.WithInitialCapacity(1))
		require.NoError(t, err, "input %q", src)

		file, err := ref.Parse(src)
		require.NoError(t, err, "input %q", src)
		assert.Empty(t, Compare(doc, file), "input %q", src)
	}
}

func TestCompareReportsDifferences(t *testing.T) {
	ref := newReference(t)

	doc, err := sexptree.Parse([]byte("(a b)"))
	require.NoError(t, err)

	shifted, err := ref.Parse([]byte("(a  b)"))
	require.NoError(t, err)
	mismatches := Compare(doc, shifted)
	require.Len(t, mismatches, 2)
	assert.Equal(t, "0", mismatches[0].Path)
	assert.Contains(t, mismatches[0].Message, "expected range [0:6], got [0:5]")
	assert.Equal(t, "0/1", mismatches[1].Path)

	extra, err := ref.Parse([]byte("(a b c)"))
	require.NoError(t, err)
	assert.Contains(t, messages(Compare(doc, extra)), "0 @0: expected 3 children, got 2")

	kinds, err := ref.Parse([]byte("((a) b)"))
	require.NoError(t, err)
	assert.Contains(t, messages(Compare(doc, kinds)), "0/0 @1: expected Group, got Word")
}

func TestChewxyShape(t *testing.T) {
	shape, err := ChewxyShape([]byte("(a b (c))"))
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, shape)

	doc, err := sexptree.Parse([]byte("(a b (c))"))
	require.NoError(t, err)
	assert.Empty(t, CompareShape(doc, shape))

	words, err := sexptree.Parse([]byte("x"))
	require.NoError(t, err)
	mismatches := CompareShape(words, shape)
	require.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0].Message, "expected atom=false")
}

func messages(mismatches []Mismatch) string {
	lines := make([]string, len(mismatches))
	for i, m := range mismatches {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}

// balancedInput produces a random well-formed token sequence.
func balancedInput(r *rand.Rand, depth int) string {
	var sb strings.Builder
	var gen func(d int)
	gen = func(d int) {
		n := r.IntN(4)
		for i := 0; i < n; i++ {
			if i > 0 || r.IntN(2) == 0 {
				sb.WriteString([]string{" ", "\n", "\t ", ""}[r.IntN(4)])
			}
			if d > 0 && r.IntN(3) == 0 {
				sb.WriteByte('(')
				gen(d - 1)
				sb.WriteByte(')')
				continue
			}
			for j := 0; j <= r.IntN(3); j++ {
				sb.WriteByte("abcxyz019.-_"[r.IntN(12)])
			}
		}
	}
	gen(depth)
	return sb.String()
}
