package sexptree

// Status is the outcome of one Parser.Step.
type Status uint8

const (
	// StatusProgressed means one unit of input was consumed.
	StatusProgressed Status = iota
	// StatusNeedsCapacity means no work was done; the tree must be migrated
	// into storage of at least Step.Capacity nodes first.
	StatusNeedsCapacity
	// StatusFinished means the whole buffer has been parsed.
	StatusFinished
)

var statusNames = map[Status]string{
	StatusProgressed:    "Progressed",
	StatusNeedsCapacity: "NeedsCapacity",
	StatusFinished:      "Finished",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Step is the result of Parser.Step.
type Step struct {
	Status   Status
	Capacity int
}

type parseState uint8

const (
	stateScanning parseState = iota
	stateFinished
	stateFailed
)

// Stats counts the work done by a parse.
type Stats struct {
	Steps    int
	Growths  int
	Nodes    int
	Words    int
	Groups   int
	MaxDepth int
}

// Parser is the incremental state machine. It owns the cursor and both
// index stacks; the Tree is written through but its storage belongs to the
// caller.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	src  []byte
	tree *Tree
	opts Options

	pos       int
	hasWord   bool
	wordStart int

	// ancestors holds the open groups from Root inward; heads holds, per
	// depth, the node that was appended last.
	ancestors *IndexStack
	heads     *IndexStack

	state parseState
	err   error
	stats Stats
}

// NewParser prepares a parse of src into tree, which must be freshly
// created by NewTree.
func NewParser(src []byte, tree *Tree, opts ...Option) *Parser {
	o := buildOptions(opts)
	p := &Parser{
		src:       src,
		tree:      tree,
		opts:      o,
		ancestors: NewIndexStack(o.MaxDepth),
		heads:     NewIndexStack(o.MaxDepth),
	}
	// MaxDepth >= 1, so Root always fits.
	_ = p.ancestors.Push(Root)
	_ = p.heads.Push(Root)
	return p
}

// Tree returns the tree being written.
func (p *Parser) Tree() *Tree {
	return p.tree
}

// Pos returns the scan offset.
func (p *Parser) Pos() int {
	return p.pos
}

// Depth returns the number of groups currently open.
func (p *Parser) Depth() int {
	return p.ancestors.Len() - 1
}

// Finished reports whether the end of the buffer has been reached.
func (p *Parser) Finished() bool {
	return p.state == stateFinished
}

// Err returns the error that stopped the parse, if any.
func (p *Parser) Err() error {
	return p.err
}

// Stats returns counters for the work done so far.
func (p *Parser) Stats() Stats {
	s := p.stats
	s.Nodes = p.tree.Len() - 1
	return s
}

// Step performs one unit of work. Once the parser has failed every later
// call returns the same error; once it has finished every later call
// returns StatusFinished.
func (p *Parser) Step() (Step, error) {
	switch p.state {
	case stateFinished:
		return Step{Status: StatusFinished}, nil
	case stateFailed:
		return Step{}, p.err
	}

	if n, ok := p.tree.NeedsGrowth(); ok {
		p.stats.Growths++
		return Step{Status: StatusNeedsCapacity, Capacity: n}, nil
	}

	p.stats.Steps++
	if err := p.advance(); err != nil {
		p.state = stateFailed
		p.err = err
		return Step{}, err
	}
	if p.state == stateFinished {
		return Step{Status: StatusFinished}, nil
	}
	return Step{Status: StatusProgressed}, nil
}

func (p *Parser) advance() error {
	if p.pos >= len(p.src) {
		if err := p.endWord(p.pos); err != nil {
			return err
		}
		if err := p.closeUnclosed(); err != nil {
			return err
		}
		p.state = stateFinished
		return nil
	}

	switch Classify(p.src[p.pos]) {
	case ClassWhitespace:
		if err := p.endWord(p.pos); err != nil {
			return err
		}
		for p.pos < len(p.src) && IsWhitespace(p.src[p.pos]) {
			p.pos++
		}
	case ClassOpen:
		if err := p.endWord(p.pos); err != nil {
			return err
		}
		if err := p.openGroup(); err != nil {
			return err
		}
		p.pos++
	case ClassClose:
		if err := p.endWord(p.pos); err != nil {
			return err
		}
		if err := p.closeGroup(p.pos + 1); err != nil {
			return err
		}
		p.pos++
	default:
		p.hasWord = true
		p.wordStart = p.pos
		for p.pos++; p.pos < len(p.src); p.pos++ {
			if Classify(p.src[p.pos]) != ClassWord {
				break
			}
		}
	}
	return nil
}

func (p *Parser) endWord(end int) error {
	if !p.hasWord {
		return nil
	}
	p.hasWord = false
	if _, err := p.appendNode(KindWord, p.wordStart, end); err != nil {
		return err
	}
	p.stats.Words++
	return nil
}

// appendNode creates a node under the innermost open group and threads it
// after the last node at that depth.
func (p *Parser) appendNode(kind Kind, start, end int) (NodeID, error) {
	parent, err := p.ancestors.Peek()
	if err != nil {
		return None, err
	}
	prev, err := p.heads.Peek()
	if err != nil {
		return None, err
	}

	id, err := p.tree.create(kind, parent, start, end)
	if err != nil {
		return None, err
	}

	// The write head still points at the parent until the first child lands.
	if prev == parent {
		err = p.tree.setFirstChild(parent, id)
	} else {
		err = p.tree.setNextSibling(prev, id)
	}
	if err != nil {
		return None, err
	}
	return id, p.heads.Replace(id)
}

func (p *Parser) openGroup() error {
	if p.ancestors.Len() >= p.ancestors.Cap() {
		return &SyntaxError{Offset: p.pos, Err: ErrTooDeep}
	}
	id, err := p.appendNode(KindGroup, p.pos, NoOffset)
	if err != nil {
		return err
	}
	if err := p.ancestors.Push(id); err != nil {
		return err
	}
	if err := p.heads.Push(id); err != nil {
		return err
	}
	p.stats.Groups++
	if d := p.Depth(); d > p.stats.MaxDepth {
		p.stats.MaxDepth = d
	}
	return nil
}

func (p *Parser) closeGroup(end int) error {
	if p.ancestors.Len() <= 1 {
		return &SyntaxError{Offset: p.pos, Err: ErrUnmatchedClose}
	}
	group, err := p.ancestors.Pop()
	if err != nil {
		return err
	}
	if _, err := p.heads.Pop(); err != nil {
		return err
	}
	p.tree.setEnd(group, end)
	return nil
}

func (p *Parser) closeUnclosed() error {
	if p.ancestors.Len() <= 1 {
		return nil
	}
	switch p.opts.Unclosed {
	case UnclosedLeave:
		return nil
	case UnclosedAutoClose:
		for p.ancestors.Len() > 1 {
			if err := p.closeGroup(len(p.src)); err != nil {
				return err
			}
		}
		return nil
	default:
		group, err := p.ancestors.Peek()
		if err != nil {
			return err
		}
		return &SyntaxError{Offset: p.tree.Node(group).Start, Err: ErrUnclosedGroup}
	}
}
