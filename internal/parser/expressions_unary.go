package parser

import (
	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

func (p *Parser) parseNegationExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseUnaryExpression(
		func(input ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.InvertExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, Input: input}
		},
		tk, precedenceSelf, false,
		[]token.Type{token.BOOL_NOT}, nil,
	)
}

func (p *Parser) parseFlipSignExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseUnaryExpression(
		func(input ast.Expression, head, tail, _ token.Token) ast.Expression {
			return &ast.FlipSignExpression{Span: ast.Span{Head: head, Tail: tail, Source: tk.RawText()}, Input: input}
		},
		tk, precedenceSelf, false,
		[]token.Type{token.MINUS}, nil,
	)
}

// A parenthesized expression resets the ladder and unwraps to its inner
// expression: parentheses only exist to steer precedence.
func (p *Parser) parseParenthesisExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	return p.parseUnaryExpression(
		func(input ast.Expression, _, _, _ token.Token) ast.Expression {
			return input
		},
		tk, precedenceSelf, true,
		[]token.Type{token.PARENTHESIS_OPEN}, []token.Type{token.PARENTHESIS_CLOSE},
	)
}
