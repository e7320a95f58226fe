package parser

import (
	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

// parseAssignmentExpression speculatively reads `identifier = value`. The
// left hand side must be a bare identifier. The value re-enters the full
// ladder, so a = b = c parses as a = (b = c).
func (p *Parser) parseAssignmentExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}

	// There's no identifier as the next token
	if next == nil || next.Type != token.IDENTIFIER {
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	// Save before consuming the identifier
	tk.SaveState()

	identifier, err := tk.ConsumeToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	next, err = tk.PeekToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	// The identifier needs to be followed by an assign token
	if next == nil || next.Type != token.ASSIGN {
		tk.RestoreState()
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	// Definitely an assignment expression
	tk.DiscardState()

	// Consume the assign token
	if _, err = tk.ConsumeToken(); err != nil {
		return nil, err
	}

	p.logger.Debug("parsing assignment", "target", identifier.Lexeme)

	value, err := p.invokeLowestPrecedenceParser(tk)
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentExpression{
		Span: ast.Span{Head: *identifier, Tail: value.TailToken(), Source: tk.RawText()},
		Target: &ast.IdentifierExpression{
			Span:   ast.Span{Head: *identifier, Tail: *identifier, Source: tk.RawText()},
			Symbol: identifier.Lexeme,
		},
		Value: value,
	}, nil
}

func (p *Parser) parseIfThenElseExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}

	// There's no if keyword as the next token
	if next == nil || next.Type != token.KW_IF {
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	head, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}

	condition, err := p.invokeLowestPrecedenceParser(tk)
	if err != nil {
		return nil, err
	}

	// Has to be followed by the then keyword
	then, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}
	if then == nil || then.Type != token.KW_THEN {
		return nil, p.unexpectedToken(tk, then, token.KW_THEN)
	}

	positiveBody, err := p.invokeLowestPrecedenceParser(tk)
	if err != nil {
		return nil, err
	}

	// Has to be followed by the else keyword
	elseTk, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}
	if elseTk == nil || elseTk.Type != token.KW_ELSE {
		return nil, p.unexpectedToken(tk, elseTk, token.KW_ELSE)
	}

	negativeBody, err := p.invokeLowestPrecedenceParser(tk)
	if err != nil {
		return nil, err
	}

	return &ast.IfThenElseExpression{
		Span:         ast.Span{Head: *head, Tail: negativeBody.TailToken(), Source: tk.RawText()},
		Condition:    condition,
		PositiveBody: positiveBody,
		NegativeBody: negativeBody,
	}, nil
}
