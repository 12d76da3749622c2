package sexptree

import (
	"math/bits"
	"sync"
)

// Allocator provides backing storage for a Tree. Alloc must return a slice
// of at least n nodes; Release hands back storage the tree no longer uses.
type Allocator interface {
	Alloc(n int) []Node
	Release(nodes []Node)
}

// HeapAllocator allocates with make and leaves release to the garbage
// collector.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(n int) []Node {
	return make([]Node, n)
}

func (HeapAllocator) Release([]Node) {}

// maxPoolClass bounds the size classes kept by PoolAllocator (1<<maxPoolClass
// nodes). Larger requests fall back to make.
const maxPoolClass = 24

// PoolAllocator recycles arena storage across parses. Requests are rounded
// up to a power of two and served from one sync.Pool per size class, so it
// is safe for concurrent use by independent parses.
type PoolAllocator struct {
	pools [maxPoolClass + 1]sync.Pool
}

// NewPoolAllocator returns an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Alloc returns storage of n rounded up to the next power of two.
func (a *PoolAllocator) Alloc(n int) []Node {
	class := sizeClass(n)
	if class > maxPoolClass {
		return make([]Node, n)
	}
	if v := a.pools[class].Get(); v != nil {
		return *(v.(*[]Node))
	}
	return make([]Node, 1<<class)
}

// Release keeps nodes for reuse. Slices that Alloc could not have returned
// are dropped.
func (a *PoolAllocator) Release(nodes []Node) {
	n := len(nodes)
	if n == 0 || n&(n-1) != 0 {
		// not one of ours
		return
	}
	class := sizeClass(n)
	if class > maxPoolClass {
		return
	}
	a.pools[class].Put(&nodes)
}
