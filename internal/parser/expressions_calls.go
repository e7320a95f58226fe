package parser

import (
	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

// parseFunctionInvocationExpression speculatively consumes an identifier and
// checks for an opening parenthesis; anything else rolls back and delegates.
// Whatever came out may be called again directly, so ((x) -> x + 1)(2) and
// chained calls like f(1)(2) work too.
func (p *Parser) parseFunctionInvocationExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}

	// There's no identifier as the next token; parse through the higher
	// rungs and offer direct calls on the result
	if next == nil || next.Type != token.IDENTIFIER {
		callee, err := p.invokeNextPrecedenceParser(tk, precedenceSelf)
		if err != nil {
			return nil, err
		}
		return p.parseCalleeInvocations(tk, callee)
	}

	// Store before consuming the identifier
	tk.SaveState()

	tokenIdentifier, err := tk.ConsumeToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	next, err = tk.PeekToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	// There's no opening parenthesis as the next token, put the identifier back
	if next == nil || (next.Type != token.PARENTHESIS_OPEN && next.Type != token.OPTIONAL_PARENTHESIS_OPEN) {
		tk.RestoreState()
		callee, err := p.invokeNextPrecedenceParser(tk, precedenceSelf)
		if err != nil {
			return nil, err
		}
		return p.parseCalleeInvocations(tk, callee)
	}

	// This has to be a function invocation, no rollback needed anymore
	tk.DiscardState()

	paren, err := tk.ConsumeToken()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsing function invocation", "name", tokenIdentifier.Lexeme)

	arguments, closing, err := p.parseArgumentList(tk)
	if err != nil {
		return nil, err
	}

	invocation := &ast.FunctionInvocationExpression{
		Span: ast.Span{Head: *tokenIdentifier, Tail: *closing, Source: tk.RawText()},
		Name: &ast.IdentifierExpression{
			Span:   ast.Span{Head: *tokenIdentifier, Tail: *tokenIdentifier, Source: tk.RawText()},
			Symbol: tokenIdentifier.Lexeme,
		},
		Arguments: arguments,
		Optional:  paren.Type == token.OPTIONAL_PARENTHESIS_OPEN,
	}

	return p.parseCalleeInvocations(tk, invocation)
}

// parseArgumentList reads the arguments of an invocation whose opening
// parenthesis is already consumed, up to and including the closing one.
func (p *Parser) parseArgumentList(tk *tokenizer.Tokenizer) ([]ast.InvocationArgument, *token.Token, error) {
	var arguments []ast.InvocationArgument

	for {
		next, err := tk.PeekToken()
		if err != nil {
			return nil, nil, err
		}
		if next == nil || next.Type == token.PARENTHESIS_CLOSE {
			break
		}

		if len(arguments) > 0 {
			// Arguments other than the first one are separated out by commas
			if next.Type != token.COMMA {
				return nil, nil, p.unexpectedToken(tk, next, token.COMMA)
			}
			if _, err = tk.ConsumeToken(); err != nil {
				return nil, nil, err
			}
		}

		name, err := p.parseArgumentName(tk)
		if err != nil {
			return nil, nil, err
		}

		value, err := p.invokeLowestPrecedenceParser(tk)
		if err != nil {
			return nil, nil, err
		}

		arguments = append(arguments, ast.InvocationArgument{Value: value, Name: name})
	}

	// Invocations have to be terminated with a closing parenthesis
	closing, err := tk.ConsumeToken()
	if err != nil {
		return nil, nil, err
	}
	if closing == nil || closing.Type != token.PARENTHESIS_CLOSE {
		return nil, nil, p.unexpectedToken(tk, closing, token.PARENTHESIS_CLOSE)
	}

	return arguments, closing, nil
}

// parseCalleeInvocations chains direct calls onto an already parsed callee
// for as long as opening parentheses follow.
func (p *Parser) parseCalleeInvocations(tk *tokenizer.Tokenizer, callee ast.Expression) (ast.Expression, error) {
	for {
		next, err := tk.PeekToken()
		if err != nil {
			return nil, err
		}
		if next == nil || (next.Type != token.PARENTHESIS_OPEN && next.Type != token.OPTIONAL_PARENTHESIS_OPEN) {
			return callee, nil
		}

		paren, err := tk.ConsumeToken()
		if err != nil {
			return nil, err
		}

		arguments, closing, err := p.parseArgumentList(tk)
		if err != nil {
			return nil, err
		}

		callee = &ast.FunctionInvocationExpression{
			Span:      ast.Span{Head: callee.HeadToken(), Tail: *closing, Source: tk.RawText()},
			Callee:    callee,
			Arguments: arguments,
			Optional:  paren.Type == token.OPTIONAL_PARENTHESIS_OPEN,
		}
	}
}

// parseArgumentName speculatively reads `identifier =` and yields the name,
// or nil when the argument turns out to be positional.
func (p *Parser) parseArgumentName(tk *tokenizer.Tokenizer) (*ast.IdentifierExpression, error) {
	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}
	if next == nil || next.Type != token.IDENTIFIER {
		return nil, nil
	}

	// Save before consuming so the token after the identifier can be peeked too
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

	// No assign token following the identifier, it cannot be a named argument
	if next == nil || next.Type != token.ASSIGN {
		tk.RestoreState()
		return nil, nil
	}

	tk.DiscardState()

	// Consume the assign token
	if _, err = tk.ConsumeToken(); err != nil {
		return nil, err
	}

	return &ast.IdentifierExpression{
		Span:   ast.Span{Head: *identifier, Tail: *identifier, Source: tk.RawText()},
		Symbol: identifier.Lexeme,
	}, nil
}

// parseCallbackExpression speculatively parses (a, b, ...) -> body. The
// signature clashes with parenthesized expressions, so the attempt rolls
// back whenever a non-identifier shows up inside the parentheses or the
// arrow never materializes.
func (p *Parser) parseCallbackExpression(tk *tokenizer.Tokenizer, precedenceSelf int) (ast.Expression, error) {
	// Part of a member access chain, not a callback
	if prev := tk.PreviousToken(); prev != nil && prev.Type == token.DOT {
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	next, err := tk.PeekToken()
	if err != nil {
		return nil, err
	}

	if next == nil || next.Type != token.PARENTHESIS_OPEN {
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	// Save once before consuming anything
	tk.SaveState()

	head, err := tk.ConsumeToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	var signature []*ast.IdentifierExpression

	for {
		next, err = tk.PeekToken()
		if err != nil {
			tk.RestoreState()
			return nil, err
		}
		if next == nil || next.Type == token.PARENTHESIS_CLOSE {
			break
		}

		if len(signature) > 0 {
			// Signature entries are comma separated; anything else makes this
			// a parenthesized expression instead
			if next.Type != token.COMMA {
				tk.RestoreState()
				return p.invokeNextPrecedenceParser(tk, precedenceSelf)
			}
			if _, err = tk.ConsumeToken(); err != nil {
				tk.RestoreState()
				return nil, err
			}
		}

		entry, err := p.parsePrimaryExpression(tk)
		if err != nil {
			if !diagnostics.IsCode(err, diagnostics.ErrUnexpectedToken) {
				tk.RestoreState()
				return nil, err
			}
			entry = nil
		}

		// Anything but identifiers within the parentheses disqualifies
		identifier, ok := entry.(*ast.IdentifierExpression)
		if !ok {
			tk.RestoreState()
			return p.invokeNextPrecedenceParser(tk, precedenceSelf)
		}

		signature = append(signature, identifier)
	}

	closing, err := tk.ConsumeToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}
	if closing == nil || closing.Type != token.PARENTHESIS_CLOSE {
		tk.RestoreState()
		return nil, p.unexpectedToken(tk, closing, token.PARENTHESIS_CLOSE)
	}

	next, err = tk.PeekToken()
	if err != nil {
		tk.RestoreState()
		return nil, err
	}

	// Without the arrow this was a parenthesized expression all along
	if next == nil || next.Type != token.ARROW {
		tk.RestoreState()
		return p.invokeNextPrecedenceParser(tk, precedenceSelf)
	}

	// Definitely a callback now
	tk.DiscardState()

	if _, err = tk.ConsumeToken(); err != nil {
		return nil, err
	}

	p.logger.Debug("parsing callback", "signatureSize", len(signature))

	body, err := p.invokeLowestPrecedenceParser(tk)
	if err != nil {
		return nil, err
	}

	return &ast.CallbackExpression{
		Span:      ast.Span{Head: *head, Tail: body.TailToken(), Source: tk.RawText()},
		Signature: signature,
		Body:      body,
	}, nil
}
