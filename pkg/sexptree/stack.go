package sexptree

// IndexStack is a fixed-capacity stack of node indices. Its storage is
// allocated once and reused; it never grows.
type IndexStack struct {
	items []NodeID
	top   int
}

// NewIndexStack returns an empty stack that holds at most capacity entries.
func NewIndexStack(capacity int) *IndexStack {
	if capacity < 0 {
		capacity = 0
	}
	return &IndexStack{items: make([]NodeID, capacity)}
}

// Len returns the number of entries on the stack.
func (s *IndexStack) Len() int {
	return s.top
}

// Cap returns the fixed capacity of the stack.
func (s *IndexStack) Cap() int {
	return len(s.items)
}

// Push appends x. Pushing onto a full stack is a protocol violation.
func (s *IndexStack) Push(x NodeID) error {
	if s.top >= len(s.items) {
		return protocolErrorf("stack push", "stack full (capacity %d)", len(s.items))
	}
	s.items[s.top] = x
	s.top++
	return nil
}

// Pop removes and returns the top entry.
func (s *IndexStack) Pop() (NodeID, error) {
	if s.top == 0 {
		return None, protocolErrorf("stack pop", "stack empty")
	}
	s.top--
	return s.items[s.top], nil
}

// Peek returns the top entry without removing it.
func (s *IndexStack) Peek() (NodeID, error) {
	if s.top == 0 {
		return None, protocolErrorf("stack peek", "stack empty")
	}
	return s.items[s.top-1], nil
}

// Replace overwrites the top entry.
func (s *IndexStack) Replace(x NodeID) error {
	if s.top == 0 {
		return protocolErrorf("stack replace", "stack empty")
	}
	s.items[s.top-1] = x
	return nil
}
