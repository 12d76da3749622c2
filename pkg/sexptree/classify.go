package sexptree

// Class is the lexical class of a single input byte.
type Class uint8

const (
	ClassWord Class = iota
	ClassWhitespace
	ClassOpen
	ClassClose
)

var classNames = map[Class]string{
	ClassWord:       "Word",
	ClassWhitespace: "Whitespace",
	ClassOpen:       "Open",
	ClassClose:      "Close",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Classify returns the class of c. Every byte that is not whitespace or a
// parenthesis is a word byte.
func Classify(c byte) Class {
	switch c {
	case '(':
		return ClassOpen
	case ')':
		return ClassClose
	}
	if IsWhitespace(c) {
		return ClassWhitespace
	}
	return ClassWord
}

// IsWhitespace reports whether c is space, newline, tab, carriage return,
// form feed or vertical tab.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' ||
		c == '\r' || c == '\f' || c == '\v'
}
