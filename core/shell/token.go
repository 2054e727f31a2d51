package shell

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// Num is a decimal integer literal.
	Num TokenKind = iota
	// Item is a bare word.
	Item
	// OpenQuote is a double quote that is never closed.
	OpenQuote
	// QuotedItem is a fully quoted string, its text excludes the quotes.
	QuotedItem
	// Pipe separates pipeline stages.
	Pipe
	// Arrow is "->".
	Arrow
	// Dot is ".".
	Dot
	// Whitespace is a run of space characters.
	Whitespace
	// Equals is "=".
	Equals
)

var tokenKindNames = map[TokenKind]string{
	Num:        "Num",
	Item:       "Item",
	OpenQuote:  "OpenQuote",
	QuotedItem: "QuotedItem",
	Pipe:       "Pipe",
	Arrow:      "Arrow",
	Dot:        "Dot",
	Whitespace: "Whitespace",
	Equals:     "Equals",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical element. Text holds the word for Item and
// QuotedItem, Num holds the value of integer literals.
type Token struct {
	Kind TokenKind
	Text string
	Num  int64
}

func (t Token) String() string {
	switch t.Kind {
	case Num:
		return fmt.Sprintf("Num(%d)", t.Num)
	case Item, QuotedItem:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.Quote(t.Text))
	default:
		return t.Kind.String()
	}
}

// Span is a half-open byte range [Start, End) of the source line.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a token with its location in the source line.
type Spanned struct {
	Token Token
	Span  Span
}
