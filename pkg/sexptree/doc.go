// Package sexptree parses a parenthesis-delimited, whitespace-separated token
// language into an index-linked node arena.
//
// Parsing is incremental: each call to Parser.Step performs one bounded unit
// of work. When the arena is about to run out of room the step does nothing
// and reports the capacity the caller must provide instead; the caller
// allocates new storage, hands it to Tree.Migrate and keeps stepping. Parse
// wraps that loop around an Allocator.
//
// Nodes never copy text. A Word or Group covers src[Start:End] of the buffer
// that was parsed, so the buffer must outlive the tree.
//
//	doc, err := sexptree.Parse([]byte("(a b (c))"))
//	if err != nil {
//		return err
//	}
//	for _, id := range doc.Tree.Children(sexptree.Root) {
//		fmt.Println(doc.Kind(id), string(doc.Text(id)))
//	}
package sexptree
