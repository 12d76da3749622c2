package cmd

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/sexptree/pkg/sexptree"
	"github.com/OpenTraceLab/sexptree/pkg/source"
)

var pool sexptree.Allocator = sexptree.NewPoolAllocator()

// parseOptions converts the global flags into parser options.
func parseOptions() ([]sexptree.Option, error) {
	policy, err := sexptree.ParseUnclosedPolicy(unclosed)
	if err != nil {
		return nil, err
	}
	opts := []sexptree.Option{
		sexptree.WithInitialCapacity(initialCapacity),
		sexptree.WithMaxDepth(maxDepth),
		sexptree.WithUnclosedPolicy(policy),
	}
	if usePool {
		opts = append(opts, sexptree.WithAllocator(pool))
	}
	return opts, nil
}

// parseFile loads and parses filename. Syntax errors are reported with a
// line:column position.
func parseFile(filename string) (*sexptree.Document, error) {
	src, err := source.Load(filename)
	if err != nil {
		return nil, err
	}
	return parseSource(filename, src)
}

func parseSource(filename string, src []byte) (*sexptree.Document, error) {
	opts, err := parseOptions()
	if err != nil {
		return nil, err
	}
	doc, err := sexptree.Parse(src, opts...)
	if err != nil {
		return doc, locateError(filename, src, err)
	}
	log.Debugf("%s: %d nodes", filename, doc.Tree.Len())
	return doc, nil
}

func locateError(filename string, src []byte, err error) error {
	var syntaxErr *sexptree.SyntaxError
	if errors.As(err, &syntaxErr) {
		pos := source.NewLineIndex(src).Locate(syntaxErr.Offset)
		return fmt.Errorf("%s:%s: %w", filename, pos, syntaxErr.Err)
	}
	return fmt.Errorf("%s: %w", filename, err)
}

// release hands the arena back to the pool once a document is done with.
func release(doc *sexptree.Document) {
	if usePool && doc != nil {
		doc.Release(pool)
	}
}
