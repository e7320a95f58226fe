// Package parser implements a precedence-climbing recursive-descent parser.
// An ordered ladder of parsing functions runs from the lowest precedence
// (assignment) to the highest (primary values); each rung either parses its
// own form or delegates to the next rung. Parsing happens once ahead of
// time, the resulting AST is then evaluated over and over again, so clarity
// wins over raw parser throughput here.
package parser

import (
	"log/slog"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

// parseFunc is one rung of the precedence ladder.
type parseFunc func(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error)

type Parser struct {
	logger *slog.Logger
	ladder []parseFunc
}

func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	p := &Parser{logger: logger}

	p.ladder = []parseFunc{
		p.parseAssignmentExpression,
		p.parseNullCoalesceExpression,
		p.parseConcatenationExpression,
		p.parseDisjunctionExpression,
		p.parseConjunctionExpression,
		p.parseEqualityExpression,
		p.parseComparisonExpression,
		p.parseAdditiveExpression,
		p.parseMultiplicativeExpression,
		p.parseExponentiationExpression,
		p.parseNegationExpression,
		p.parseFlipSignExpression,
		p.parsePostfixExpression,
		p.parseFunctionInvocationExpression,
		p.parseIfThenElseExpression,
		p.parseCallbackExpression,
		p.parseParenthesisExpression,
		func(tk *tokenizer.Tokenizer, _ int) (ast.Expression, error) {
			return p.parsePrimaryExpression(tk)
		},
	}

	return p
}

// Parse consumes all tokens into a program of one expression per line.
func (p *Parser) Parse(tk *tokenizer.Tokenizer) (*ast.ProgramExpression, error) {
	var lines []ast.Expression

	for {
		next, err := tk.PeekToken()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}

		// Start at the lowest precedence expression and climb up
		line, err := p.invokeLowestPrecedenceParser(tk)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	// Completely empty expression, should've at least parsed one line
	if len(lines) == 0 {
		return nil, p.unexpectedToken(tk, nil)
	}

	return &ast.ProgramExpression{
		Span: ast.Span{
			Head:   lines[0].HeadToken(),
			Tail:   lines[len(lines)-1].TailToken(),
			Source: tk.RawText(),
		},
		Lines: lines,
	}, nil
}

func (p *Parser) invokeLowestPrecedenceParser(tk *tokenizer.Tokenizer) (ast.Expression, error) {
	return p.ladder[0](tk, 0)
}

func (p *Parser) invokeNextPrecedenceParser(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.ladder[precedenceSelf+1](tk, precedenceSelf+1)
}

// matchingTypeIndex returns the index of the token's type within types, or -1.
func matchingTypeIndex(types []token.Type, tk *token.Token) int {
	if tk == nil {
		return -1
	}
	for i, t := range types {
		if tk.Type == t {
			return i
		}
	}
	return -1
}

// unexpectedToken builds the syntactic error for a missing or mismatched
// token. actual may be nil when the input ended early.
func (p *Parser) unexpectedToken(tk *tokenizer.Tokenizer, actual *token.Token, expected ...token.Type) *diagnostics.Error {
	row, col := tk.CurrentRow(), tk.CurrentCol()
	got := "end of input"
	if actual != nil {
		row, col = actual.Row, actual.Col
		got = actual.Type.Representation()
	}

	if len(expected) == 0 {
		return diagnostics.New(
			diagnostics.ErrUnexpectedToken, row, col, tk.RawText(),
			"expected an expression, got %s", got,
		)
	}

	reps := make([]string, len(expected))
	for i, t := range expected {
		reps[i] = t.Representation()
	}

	return diagnostics.New(
		diagnostics.ErrUnexpectedToken, row, col, tk.RawText(),
		"expected %s, got %s", strings.Join(reps, " or "), got,
	)
}

// binaryWrapper wraps a parsed lhs/rhs pair into the matching node type.
type binaryWrapper func(lhs, rhs ast.Expression, head, tail, operator token.Token) ast.Expression

// parseBinaryExpression parses the left hand side through the next rung,
// then, while the upcoming token matches one of the operators, consumes it,
// parses a right hand side through the next rung and chains the result
// leftwards (left-associative).
func (p *Parser) parseBinaryExpression(
	wrapper binaryWrapper, tk *tokenizer.Tokenizer,
	precedenceSelf int, operators []token.Type,
) (ast.Expression, error) {
	lhs, err := p.invokeNextPrecedenceParser(tk, precedenceSelf)
	if err != nil {
		return nil, err
	}

	head := lhs.HeadToken()

	for {
		next, err := tk.PeekToken()
		if err != nil {
			return nil, err
		}

		if matchingTypeIndex(operators, next) < 0 {
			return lhs, nil
		}

		operator, err := tk.ConsumeToken()
		if err != nil {
			return nil, err
		}

		rhs, err := p.invokeNextPrecedenceParser(tk, precedenceSelf)
		if err != nil {
			return nil, err
		}

		lhs = wrapper(lhs, rhs, head, rhs.TailToken(), *operator)
	}
}

// unaryWrapper wraps a parsed operand into the matching node type.
type unaryWrapper func(input ast.Expression, head, tail, operator token.Token) ast.Expression

// parseUnaryExpression matches one of the operators, parses the operand
// (next rung, or a full ladder reset for parentheses) and optionally
// consumes a terminator.
func (p *Parser) parseUnaryExpression(
	wrapper unaryWrapper, tk *tokenizer.Tokenizer,
	precedenceSelf int, resetPrecedence bool,
	operators []token.Type, terminators []token.Type,
) (ast.Expression, error) {
	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}

	opInd := matchingTypeIndex(operators, next)
	if opInd < 0 {
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	operator, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}

	var input ast.Expression
	if resetPrecedence {
		input, err = p.invokeLowestPrecedenceParser(tk)
	} else {
		input, err = p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}
	if err != nil {
		return nil, err
	}

	if terminators != nil {
		terminator, err := tk.ConsumeToken()
		if err != nil {
			return nil, err
		}
		if terminator == nil || terminator.Type != terminators[opInd] {
			return nil, p.unexpectedToken(tk, terminator, terminators[opInd])
		}
	}

	return wrapper(input, *operator, input.TailToken(), *operator), nil
}
