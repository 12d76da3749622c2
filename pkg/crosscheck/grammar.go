// Package crosscheck validates arena trees against independent parsers of
// the same token language.
package crosscheck

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// TokenLexer defines the lexical structure: whitespace runs, the two
// delimiters, and words made of everything else.
var TokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\n\r\f\v]+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Word", Pattern: `[^ \t\n\r\f\v()]+`},
})

// File is a sequence of top-level expressions.
type File struct {
	Exprs []*Expr `@@*`
}

// Expr is either a word or a parenthesized list.
type Expr struct {
	Pos  lexer.Position
	Word *string `  @Word`
	List *List   `| @@`
}

// List is "(" Expr* ")".
type List struct {
	Pos   lexer.Position
	Exprs []*Expr `"(" @@*`
	Close *Close  `@@`
}

// Close records where a list's ")" sits.
type Close struct {
	Pos   lexer.Position
	Token string `@")"`
}

// Start returns the offset of the first byte of e.
func (e *Expr) Start() int {
	if e.List != nil {
		return e.List.Pos.Offset
	}
	return e.Pos.Offset
}

// End returns the offset one past the last byte of e.
func (e *Expr) End() int {
	if e.List != nil {
		return e.List.Close.Pos.Offset + 1
	}
	return e.Pos.Offset + len(*e.Word)
}

// Reference is a declarative parser for the token language.
type Reference struct {
	parser *participle.Parser[File]
}

// NewReference builds the reference parser.
func NewReference() (*Reference, error) {
	parser, err := participle.Build[File](
		participle.Lexer(TokenLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Reference{parser: parser}, nil
}

// Parse parses src. Unbalanced input is an error.
func (r *Reference) Parse(src []byte) (*File, error) {
	file, err := r.parser.ParseBytes("", src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// String returns the grammar in EBNF form.
func (r *Reference) String() string {
	return r.parser.String()
}
