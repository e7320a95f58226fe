package parser

import (
	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

func (p *Parser) parseNullCoalesceExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.NullCoalesceExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs}
		},
		tk, precedenceSelf,
		[]token.Type{token.NULL_COALESCE},
	)
}

func (p *Parser) parseConcatenationExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.ConcatenationExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs}
		},
		tk, precedenceSelf,
		[]token.Type{token.CONCATENATE},
	)
}

func (p *Parser) parseDisjunctionExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.DisjunctionExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs}
		},
		tk, precedenceSelf,
		[]token.Type{token.BOOL_OR},
	)
}

func (p *Parser) parseConjunctionExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.ConjunctionExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs}
		},
		tk, precedenceSelf,
		[]token.Type{token.BOOL_AND},
	)
}

func (p *Parser) parseEqualityExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, operator token.Token) ast.Expression {
			var operation ast.EqualityOperation
			switch operator.Type {
			case token.VALUE_EQUALS:
				operation = ast.EQUALITY_EQUAL
			case token.VALUE_NOT_EQUALS:
				operation = ast.EQUALITY_NOT_EQUAL
			case token.VALUE_EQUALS_EXACT:
				operation = ast.EQUALITY_EQUAL_EXACT
			case token.VALUE_NOT_EQUALS_EXACT:
				operation = ast.EQUALITY_NOT_EQUAL_EXACT
			}
			return &ast.EqualityExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs, Operation: operation}
		},
		tk, precedenceSelf,
		[]token.Type{token.VALUE_EQUALS, token.VALUE_NOT_EQUALS, token.VALUE_EQUALS_EXACT, token.VALUE_NOT_EQUALS_EXACT},
	)
}

func (p *Parser) parseComparisonExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, operator token.Token) ast.Expression {
			var operation ast.ComparisonOperation
			switch operator.Type {
			case token.GREATER_THAN:
				operation = ast.COMPARE_GREATER_THAN
			case token.GREATER_THAN_OR_EQUAL:
				operation = ast.COMPARE_GREATER_THAN_OR_EQUAL
			case token.LESS_THAN:
				operation = ast.COMPARE_LESS_THAN
			case token.LESS_THAN_OR_EQUAL:
				operation = ast.COMPARE_LESS_THAN_OR_EQUAL
			}
			return &ast.ComparisonExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs, Operation: operation}
		},
		tk, precedenceSelf,
		[]token.Type{token.GREATER_THAN, token.GREATER_THAN_OR_EQUAL, token.LESS_THAN, token.LESS_THAN_OR_EQUAL},
	)
}

func (p *Parser) parseAdditiveExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, operator token.Token) ast.Expression {
			operation := ast.MATH_ADDITION
			if operator.Type == token.MINUS {
				operation = ast.MATH_SUBTRACTION
			}
			return &ast.MathExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs, Operation: operation}
		},
		tk, precedenceSelf,
		[]token.Type{token.PLUS, token.MINUS},
	)
}

func (p *Parser) parseMultiplicativeExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, operator token.Token) ast.Expression {
			operation := ast.MATH_MULTIPLICATION
			switch operator.Type {
			case token.DIVISION:
				operation = ast.MATH_DIVISION
			case token.MODULO:
				operation = ast.MATH_MODULO
			}
			return &ast.MathExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs, Operation: operation}
		},
		tk, precedenceSelf,
		[]token.Type{token.MULTIPLICATION, token.DIVISION, token.MODULO},
	)
}

// Exponentiation chains left-associatively like every other binary rung:
// 2 ^ 3 ^ 2 is (2 ^ 3) ^ 2.
func (p *Parser) parseExponentiationExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseBinaryExpression(
		func(lhs, rhs ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.MathExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, LHS: lhs, RHS: rhs, Operation: ast.MATH_POWER}
		},
		tk, precedenceSelf,
		[]token.Type{token.EXPONENT},
	)
}

// parsePostfixExpression chains indexing and member access onto a single
// left hand side in any order: items[0].name, user.tags[1], a?.b?[0]. A
// bracketed index re-enters the full ladder and requires the closing
// bracket; a member name parses at the next-higher precedence.
func (p *Parser) parsePostfixExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
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
		if next == nil {
			return lhs, nil
		}

		switch next.Type {
		case token.BRACKET_OPEN, token.OPTIONAL_BRACKET_OPEN:
			operator, err := tk.ConsumeToken()
			if err != nil {
				return nil, err
			}

			rhs, err := p.invokeLowestPrecedenceParser(tk)
			if err != nil {
				return nil, err
			}

			closing, err := tk.ConsumeToken()
			if err != nil {
				return nil, err
			}
			if closing == nil || closing.Type != token.BRACKET_CLOSE {
				return nil, p.unexpectedToken(tk, closing, token.BRACKET_CLOSE)
			}

			lhs = &ast.IndexExpression{
				Span: ast.Span{Head: head, Tail: *closing, Source: tk.RawText()},
				LHS:  lhs, RHS: rhs,
				Optional: operator.Type == token.OPTIONAL_BRACKET_OPEN,
			}

		case token.DOT, token.OPTIONAL_DOT:
			operator, err := tk.ConsumeToken()
			if err != nil {
				return nil, err
			}

			rhs, err := p.invokeNextPrecedenceParser(tk, precedenceSelf)
			if err != nil {
				return nil, err
			}

			lhs = &ast.MemberAccessExpression{
				Span: ast.Span{Head: head, Tail: rhs.TailToken(), Source: tk.RawText()},
				LHS:  lhs, RHS: rhs,
				Optional: operator.Type == token.OPTIONAL_DOT,
			}

		default:
			return lhs, nil
		}
	}
}
