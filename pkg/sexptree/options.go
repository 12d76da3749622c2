package sexptree

import "fmt"

const (
	// DefaultInitialCapacity is the arena size Parse starts with.
	DefaultInitialCapacity = 1024
	// DefaultMaxDepth is the capacity of both index stacks, Root included,
	// so at most DefaultMaxDepth-1 groups can be open at once.
	DefaultMaxDepth = 64
)

// UnclosedPolicy decides what happens to groups still open at the end of
// the buffer.
type UnclosedPolicy uint8

const (
	// UnclosedReject fails the parse with ErrUnclosedGroup.
	UnclosedReject UnclosedPolicy = iota
	// UnclosedLeave finishes normally and leaves End as NoOffset.
	UnclosedLeave
	// UnclosedAutoClose ends every open group at len(src).
	UnclosedAutoClose
)

var unclosedNames = map[UnclosedPolicy]string{
	UnclosedReject:    "reject",
	UnclosedLeave:     "leave",
	UnclosedAutoClose: "close",
}

func (p UnclosedPolicy) String() string {
	if name, ok := unclosedNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseUnclosedPolicy maps "reject", "leave" or "close" to a policy.
func ParseUnclosedPolicy(s string) (UnclosedPolicy, error) {
	for p, name := range unclosedNames {
		if name == s {
			return p, nil
		}
	}
	return UnclosedReject, fmt.Errorf("unknown unclosed policy %q (expected reject, leave or close)", s)
}

// Options configures a Parser and the Parse driver.
type Options struct {
	InitialCapacity int
	MaxDepth        int
	Unclosed        UnclosedPolicy
	Allocator       Allocator
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		MaxDepth:        DefaultMaxDepth,
		Unclosed:        UnclosedReject,
		Allocator:       HeapAllocator{},
	}
}

// WithInitialCapacity sets the first arena size Parse allocates. Values
// below 1 are raised to 1, the room needed for Root.
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// WithMaxDepth sets the index stack capacity (Root included).
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithUnclosedPolicy sets what happens to groups still open at end of input.
func WithUnclosedPolicy(p UnclosedPolicy) Option {
	return func(o *Options) {
		o.Unclosed = p
	}
}

// WithAllocator sets where Parse gets arena storage from.
func WithAllocator(a Allocator) Option {
	return func(o *Options) {
		o.Allocator = a
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.InitialCapacity < 1 {
		o.InitialCapacity = 1
	}
	if o.MaxDepth < 1 {
		o.MaxDepth = 1
	}
	if o.Allocator == nil {
		o.Allocator = HeapAllocator{}
	}
	return o
}
