package shell

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule tries to match a token at the start of s, returning the token and the
// number of bytes it consumed. A rule that doesn't match returns n == 0.
type rule func(s string) (tok Token, n int)

// rules are tried in order; the first match wins.
var rules = []rule{
	lexNumber,
	lexQuoted,
	lexLiteral("\"", OpenQuote),
	lexLiteral("|", Pipe),
	lexLiteral("->", Arrow),
	lexLiteral(".", Dot),
	lexLiteral("=", Equals),
	lexWhitespace,
	lexItem,
}

// Lex splits a line into tokens. It never fails: input that no rule matches is
// skipped a rune at a time and lexing resumes at the next position.
func Lex(line string) []Spanned {
	var out []Spanned

	for pos := 0; pos < len(line); {
		tok, n := next(line[pos:])
		if n == 0 {
			_, width := utf8.DecodeRuneInString(line[pos:])
			pos += width
			continue
		}

		out = append(out, Spanned{Token: tok, Span: Span{Start: pos, End: pos + n}})
		pos += n
	}

	return out
}

func next(s string) (Token, int) {
	for _, r := range rules {
		if tok, n := r(s); n > 0 {
			return tok, n
		}
	}
	return Token{}, 0
}

// Filter removes whitespace tokens.
func Filter(tokens []Spanned) []Spanned {
	out := make([]Spanned, 0, len(tokens))
	for _, t := range tokens {
		if t.Token.Kind != Whitespace {
			out = append(out, t)
		}
	}
	return out
}

// lexNumber matches "0" or a digit run without leading zeros. Literals that
// overflow an int64 are left for the bare word rule.
func lexNumber(s string) (Token, int) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return Token{}, 0
	}

	n := 1
	if s[0] != '0' {
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
	}

	val, err := strconv.ParseInt(s[:n], 10, 64)
	if err != nil {
		return Token{}, 0
	}
	return Token{Kind: Num, Num: val}, n
}

func lexQuoted(s string) (Token, int) {
	if !strings.HasPrefix(s, `"`) {
		return Token{}, 0
	}
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return Token{}, 0
	}
	return Token{Kind: QuotedItem, Text: s[1 : end+1]}, end + 2
}

func lexLiteral(lit string, kind TokenKind) rule {
	return func(s string) (Token, int) {
		if strings.HasPrefix(s, lit) {
			return Token{Kind: kind}, len(lit)
		}
		return Token{}, 0
	}
}

func lexWhitespace(s string) (Token, int) {
	n := spaceRun(s, true)
	if n == 0 {
		return Token{}, 0
	}
	return Token{Kind: Whitespace}, n
}

func lexItem(s string) (Token, int) {
	n := spaceRun(s, false)
	if n == 0 {
		return Token{}, 0
	}
	return Token{Kind: Item, Text: s[:n]}, n
}

// spaceRun measures the leading run of runes whose unicode.IsSpace result
// equals space.
func spaceRun(s string, space bool) int {
	n := 0
	for n < len(s) {
		r, width := utf8.DecodeRuneInString(s[n:])
		if unicode.IsSpace(r) != space {
			break
		}
		n += width
	}
	return n
}
