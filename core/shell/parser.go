package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyPipeline is returned when there are no commands to parse.
var ErrEmptyPipeline = errors.New("empty pipeline")

// ParseError describes a structurally invalid token sequence.
type ParseError struct {
	// Pos is the byte offset in the source line where the problem was found.
	Pos int
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValKind is the type of a literal argument.
type ValKind int

const (
	ValString ValKind = iota
	ValNum
)

// Val is a literal value in the parse tree.
type Val struct {
	Kind ValKind
	Str  string
	Num  int64
}

// String renders the literal as it would be passed to an external program.
func (v Val) String() string {
	if v.Kind == ValNum {
		return strconv.FormatInt(v.Num, 10)
	}
	return v.Str
}

// ExprKind identifies the form of an argument expression.
type ExprKind int

const (
	// ExprVal is a literal, the only form the parser currently produces.
	ExprVal ExprKind = iota
	// ExprLambda is reserved for `x -> body` argument expressions.
	ExprLambda
	// ExprCommand is reserved for nested command arguments.
	ExprCommand
)

// Expr is a command argument.
type Expr struct {
	Kind ExprKind
	Val  Val
}

func (e Expr) String() string {
	return e.Val.String()
}

// StringExpr creates a string literal argument.
func StringExpr(s string) Expr {
	return Expr{Kind: ExprVal, Val: Val{Kind: ValString, Str: s}}
}

// NumExpr creates an integer literal argument.
func NumExpr(n int64) Expr {
	return Expr{Kind: ExprVal, Val: Val{Kind: ValNum, Num: n}}
}

// ParsedCommand is a single stage of a pipeline.
type ParsedCommand struct {
	Name string
	Args []Expr
}

// ParsedPipeline holds the stages of a line in order.
type ParsedPipeline struct {
	Commands []ParsedCommand
}

// Names lists the command name of every stage.
func (p *ParsedPipeline) Names() []string {
	var out []string
	for _, c := range p.Commands {
		out = append(out, c.Name)
	}
	return out
}

// ParseLine lexes, filters and parses a line.
func ParseLine(line string) (*ParsedPipeline, error) {
	return Parse(Filter(Lex(line)))
}

// unit is either a pipe or a single argument expression.
type unit struct {
	pipe bool
	expr Expr
	pos  int
}

// Parse builds a pipeline from whitespace-filtered tokens.
//
//	pipeline := command (PIPE command)*
//	command  := word word*
//
// Adjacent tokens with touching spans are joined into one bare word so paths
// such as ../src survive the dot and arrow tokens. A lone integer literal stays
// an integer argument.
func Parse(tokens []Spanned) (*ParsedPipeline, error) {
	units, err := toUnits(tokens)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, &ParseError{Pos: 0, Msg: "expected a command", Err: ErrEmptyPipeline}
	}

	pipeline := &ParsedPipeline{}
	var current []unit
	flush := func(pos int, where string) error {
		if len(current) == 0 {
			return &ParseError{Pos: pos, Msg: "expected a command " + where + " '|'"}
		}
		cmd := ParsedCommand{Name: current[0].expr.Val.String()}
		for _, u := range current[1:] {
			cmd.Args = append(cmd.Args, u.expr)
		}
		pipeline.Commands = append(pipeline.Commands, cmd)
		current = nil
		return nil
	}

	for _, u := range units {
		if !u.pipe {
			current = append(current, u)
			continue
		}
		if err := flush(u.pos, "before"); err != nil {
			return nil, err
		}
	}

	last := units[len(units)-1]
	if last.pipe {
		return nil, &ParseError{Pos: last.pos + 1, Msg: "expected a command after '|'"}
	}
	if err := flush(last.pos, "before"); err != nil {
		return nil, err
	}

	return pipeline, nil
}

func toUnits(tokens []Spanned) ([]unit, error) {
	var out []unit

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Token.Kind {
		case Pipe:
			out = append(out, unit{pipe: true, pos: tok.Span.Start})
			i++

		case QuotedItem:
			out = append(out, unit{expr: StringExpr(tok.Token.Text), pos: tok.Span.Start})
			i++

		case OpenQuote:
			return nil, &ParseError{Pos: tok.Span.Start, Msg: "unterminated quote"}

		case Whitespace:
			i++

		default:
			j := i + 1
			for j < len(tokens) && joinable(tokens[j].Token.Kind) && tokens[j-1].Span.End == tokens[j].Span.Start {
				j++
			}
			expr, err := word(tokens[i:j])
			if err != nil {
				return nil, err
			}
			out = append(out, unit{expr: expr, pos: tok.Span.Start})
			i = j
		}
	}

	return out, nil
}

func joinable(kind TokenKind) bool {
	switch kind {
	case Item, Num, Dot, Arrow, Equals:
		return true
	default:
		return false
	}
}

// word converts a run of touching tokens into one argument.
func word(run []Spanned) (Expr, error) {
	if len(run) == 1 {
		tok := run[0]
		switch tok.Token.Kind {
		case Num:
			return NumExpr(tok.Token.Num), nil
		case Item:
			return StringExpr(tok.Token.Text), nil
		case Dot:
			return StringExpr("."), nil
		default:
			return Expr{}, &ParseError{Pos: tok.Span.Start, Msg: fmt.Sprintf("unexpected %s", tok.Token.Kind)}
		}
	}

	var sb strings.Builder
	for _, tok := range run {
		switch tok.Token.Kind {
		case Num:
			sb.WriteString(strconv.FormatInt(tok.Token.Num, 10))
		case Item:
			sb.WriteString(tok.Token.Text)
		case Dot:
			sb.WriteString(".")
		case Arrow:
			sb.WriteString("->")
		case Equals:
			sb.WriteString("=")
		}
	}
	return StringExpr(sb.String()), nil
}
