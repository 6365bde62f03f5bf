package parser

import (
	"fmt"
	"strconv"

	"github.com/pianohacker/scarab/value"
)

// Error kind tags, reproduced verbatim from spec.md §7's parser/tokenizer
// taxonomy (distinct from the evaluator's lower-kebab error kinds).
const (
	KindUnexpectedChar   = "UNEXPECTED_CHAR"
	KindMissingDelimiter = "MISSING_DELIMITER"
	KindMalformed        = "MALFORMED"
	KindBadLiteral       = "BAD_LITERAL"
)

// Error is a parse or tokenize failure, carrying a filename/line/column and
// a message describing what was expected.
type Error struct {
	Pos     Pos
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Parser is a recursive-descent consumer of a Scanner's tokens, holding
// exactly one token of lookahead (spec.md §4.4).
type Parser struct {
	sc  *Scanner
	cur Token
}

// NewParser creates a Parser over input and primes its lookahead token.
func NewParser(input string, file FileRef) (*Parser, error) {
	p := &Parser{sc: NewScanner(input, file)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// ParseProgram parses an entire source file: an open list terminated by
// EOF (spec.md §4.4's PROGRAM production).
func ParseProgram(input string, file FileRef) (value.Value, error) {
	p, err := NewParser(input, file)
	if err != nil {
		return nil, err
	}
	return p.parseOpenList(EOF)
}

// parseOpenList implements OPEN_LIST(T): a sequence of closed lists (one
// per statement), each separated by ',' or a newline, with a trailing
// separator allowed, until term is reached.
func (p *Parser) parseOpenList(term TokenKind) (value.Value, error) {
	var forms []value.Value

	for {
		if p.cur.Kind == term {
			break
		}

		stmt, err := p.parseStatementBody(term)
		if err != nil {
			return nil, err
		}
		if len(stmt) > 0 {
			forms = append(forms, value.FromSlice(stmt))
		}

		switch p.cur.Kind {
		case Comma, Newline:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case term:
			// Trailing separator omitted; the top-of-loop check will stop us.
		default:
			return nil, p.malformed("',' or newline or " + term.String())
		}
	}

	return value.FromSlice(forms), nil
}

// parseStatementBody parses VALUE* up to (but not consuming) the next ','
// or newline or term — one statement's worth of a closed list embedded
// inside an open list, where unlike a standalone `(...)` those separators
// are significant rather than ignorable whitespace.
func (p *Parser) parseStatementBody(term TokenKind) ([]value.Value, error) {
	var vals []value.Value
	for {
		switch p.cur.Kind {
		case Comma, Newline, term:
			return vals, nil
		case EOF:
			return nil, &Error{Pos: p.cur.Pos, Kind: KindMissingDelimiter, Message: "unexpected end of input, expected " + term.String()}
		default:
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}
}

// parseClosedList implements CLOSED_LIST(T) as used standalone inside
// `( ... )`: VALUE* with newlines skipped as insignificant whitespace,
// stopping at term.
func (p *Parser) parseClosedList(term TokenKind) ([]value.Value, error) {
	var vals []value.Value
	for {
		for p.cur.Kind == Newline {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.cur.Kind == term {
			return vals, nil
		}
		if p.cur.Kind == EOF {
			return nil, &Error{Pos: p.cur.Pos, Kind: KindMissingDelimiter, Message: "unexpected end of input, expected " + term.String()}
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

// parseOperatorList implements OPERATOR_LIST(T): VALUE (OP VALUE)*, where
// OP must be the same identifier throughout.
func (p *Parser) parseOperatorList(term TokenKind) (value.Value, error) {
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	vals := []value.Value{first}
	var op *value.Symbol

	for p.cur.Kind != term {
		if p.cur.Kind != Identifier {
			return nil, p.malformed("an operator or " + term.String())
		}
		sym := value.Intern(p.cur.Text)
		if op == nil {
			op = sym
		} else if op != sym {
			return nil, p.malformed("Non-matching operator")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	if op == nil {
		return vals[0], nil
	}
	return value.NewCell(op, value.FromSlice(vals)), nil
}

// parseValue implements VALUE := ['] ATOM_OR_LIST.
func (p *Parser) parseValue() (value.Value, error) {
	if p.cur.Kind == Quote {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseAtomOrList()
		if err != nil {
			return nil, err
		}
		return value.NewQuoted(inner), nil
	}
	return p.parseAtomOrList()
}

func (p *Parser) parseAtomOrList() (value.Value, error) {
	switch p.cur.Kind {
	case Number:
		text := p.cur.Text
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &Error{Pos: pos, Kind: KindBadLiteral, Message: "invalid integer literal " + text}
		}
		return value.NewInt(n), nil

	case String:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value.NewString(text), nil

	case Identifier:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if text == "nil" {
			return value.Nil, nil
		}
		return value.Intern(text), nil

	case LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		elems, err := p.parseClosedList(RParen)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value.FromSlice(elems), nil

	case LBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseOperatorList(RBracket)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil

	case LBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseOpenList(RBrace)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, p.malformed("a value")
	}
}

func (p *Parser) malformed(expected string) error {
	return &Error{Pos: p.cur.Pos, Kind: KindMalformed, Message: "unexpected " + p.cur.Kind.String() + ", expected " + expected}
}
