package source

import (
	"fmt"
	"sort"
)

// Position is a location in a buffer. Line and Column are 1-based and
// Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets to positions.
type LineIndex struct {
	starts []int // offset of the first byte of each line
	size   int
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(src)}
}

// Lines returns the number of lines. An empty buffer has one line.
func (x *LineIndex) Lines() int {
	return len(x.starts)
}

// Locate returns the position of offset, clamped to [0, len(src)].
func (x *LineIndex) Locate(offset int) Position {
	offset = max(0, min(offset, x.size))
	line := sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > offset
	}) - 1
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: offset - x.starts[line] + 1,
	}
}
