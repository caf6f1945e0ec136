package lambda

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenEqual
	TokenSemicolon
	TokenComma
	TokenAt
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
)

type Token struct {
	Type    TokenType
	Literal string
}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF}
		return
	}

	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		start := p.pos
		for p.pos < len(p.input) && (isLetter(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		lit := p.input[start:p.pos]
		if lit == "let" {
			p.current = Token{Type: TokenLet, Literal: lit}
		} else if lit == "in" {
			p.current = Token{Type: TokenIn, Literal: lit}
		} else {
			p.current = Token{Type: TokenIdent, Literal: lit}
		}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\"}
		p.pos++
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: "."}
		p.pos++
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "="}
		p.pos++
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";"}
		p.pos++
	case ch == ',':
		p.current = Token{Type: TokenComma, Literal: ","}
		p.pos++
	case ch == '@':
		p.current = Token{Type: TokenAt, Literal: "@"}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "("}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")"}
		p.pos++
	default:
		// Treat unknown chars as single-char identifiers (e.g. +)
		p.current = Token{Type: TokenIdent, Literal: string(ch)}
		p.pos++
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (p *Parser) Parse() (Term, error) {
	return p.parseTerm()
}

// Term ::= Abs | Let | App
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenLambda:
		return p.parseAbs()
	case TokenLet:
		return p.parseLet()
	}
	return p.parseApp()
}

// Abs ::= '\' Ident '.' Term
// The body extends as far right as possible.
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume '\'

	if p.current.Type != TokenIdent {
		return nil, fmt.Errorf("expected identifier after '\\'")
	}
	arg := p.current.Literal
	p.next()

	if p.current.Type != TokenDot {
		return nil, fmt.Errorf("expected '.' after binder %q", arg)
	}
	p.next()

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Param: Var{Name: arg}, Body: body}, nil
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen, TokenSemicolon, TokenIn:
			return left, nil
		case TokenLambda:
			// `f \x. b c` parses as `f (\x. b c)`: the abstraction
			// consumes everything to the right, ending the chain.
			right, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: right}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			// If we can't parse an atom, maybe we are done
			return left, nil
		}
		left = App{Fun: left, Arg: right}
	}
}

func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, fmt.Errorf("expected ')'")
		}
		p.next()
		return term, nil
	default:
		return nil, fmt.Errorf("unexpected token: %v", p.current)
	}
}

func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	// Parse bindings: x = M; y = N; ...
	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

	for {
		if p.current.Type != TokenIdent {
			return nil, fmt.Errorf("expected identifier in let binding")
		}
		name := p.current.Literal
		p.next()

		if p.current.Type != TokenEqual {
			return nil, fmt.Errorf("expected '='")
		}
		p.next()

		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, binding{name, val})

		if p.current.Type == TokenSemicolon {
			p.next()
			if p.current.Type == TokenIn {
				p.next()
				break
			}
			// Continue to next binding
		} else if p.current.Type == TokenIn {
			p.next()
			break
		} else {
			return nil, fmt.Errorf("expected ';' or 'in'")
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	// Desugar: let x=M; y=N in B -> (\x. (\y. B) N) M
	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		term = App{
			Fun: Abs{Param: Var{Name: b.name}, Body: term},
			Arg: b.val,
		}
	}

	return term, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// ParseProgram parses an optional `@input(a, b, ...)` declaration followed
// by a term. The declared names are the free variables the back-end may map
// to host values; with no declaration the set is empty.
func ParseProgram(input string) (Term, map[string]bool, error) {
	p := NewParser(input)
	inputs := map[string]bool{}

	if p.current.Type == TokenAt {
		p.next()
		if p.current.Type != TokenIdent || p.current.Literal != "input" {
			return nil, nil, fmt.Errorf("invalid decorator %q", p.current.Literal)
		}
		p.next()
		if p.current.Type != TokenLParen {
			return nil, nil, fmt.Errorf("expected '(' after @input")
		}
		p.next()
		for p.current.Type != TokenRParen {
			switch p.current.Type {
			case TokenIdent:
				inputs[p.current.Literal] = true
			case TokenComma:
				// separator
			default:
				return nil, nil, fmt.Errorf("invalid token %q in input declaration", p.current.Literal)
			}
			p.next()
		}
		p.next() // consume ')'
	}

	term, err := p.parseTerm()
	if err != nil {
		return nil, nil, err
	}
	return term, inputs, nil
}
