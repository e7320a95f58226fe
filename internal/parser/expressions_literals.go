package parser

import (
	"strconv"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

var valueTypes = []token.Type{
	token.LONG, token.DOUBLE, token.STRING, token.IDENTIFIER,
	token.TRUE, token.FALSE, token.NULL,
}

// parsePrimaryExpression consumes a single value token: a literal or an
// identifier. It is the topmost rung of the ladder.
func (p *Parser) parsePrimaryExpression(tk *tokenizer.Tokenizer) (ast.Expression, error) {
	tok, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, p.unexpectedToken(tk, nil, valueTypes...)
	}

	span := ast.Span{Head: *tok, Tail: *tok, Source: tk.RawText()}

	switch tok.Type {
	case token.LONG:
		return &ast.LongExpression{Span: span, Value: parseLongLexeme(tok.Lexeme)}, nil

	case token.DOUBLE:
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.unexpectedToken(tk, tok, token.DOUBLE)
		}
		return &ast.DoubleExpression{Span: span, Value: value}, nil

	case token.STRING:
		return &ast.StringExpression{Span: span, Value: tok.Lexeme}, nil

	case token.IDENTIFIER:
		return &ast.IdentifierExpression{Span: span, Symbol: tok.Lexeme}, nil

	case token.TRUE:
		return &ast.LiteralExpression{Span: span, Kind: ast.LITERAL_TRUE}, nil

	case token.FALSE:
		return &ast.LiteralExpression{Span: span, Kind: ast.LITERAL_FALSE}, nil

	case token.NULL:
		return &ast.LiteralExpression{Span: span, Kind: ast.LITERAL_NULL}, nil

	default:
		return nil, p.unexpectedToken(tk, tok, valueTypes...)
	}
}

// parseLongLexeme parses -?[0-9]+(e[0-9]+)? on a consistent 64-bit path.
// The exponent multiplies out in int64 arithmetic and wraps on overflow.
func parseLongLexeme(lexeme string) int64 {
	exponentIndex := strings.IndexByte(lexeme, 'e')

	if exponentIndex < 0 {
		value, _ := strconv.ParseInt(lexeme, 10, 64)
		return value
	}

	mantissa, _ := strconv.ParseInt(lexeme[:exponentIndex], 10, 64)
	exponent, _ := strconv.ParseInt(lexeme[exponentIndex+1:], 10, 64)

	for ; exponent > 0; exponent-- {
		mantissa *= 10
	}

	return mantissa
}
