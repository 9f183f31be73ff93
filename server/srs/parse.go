package srs

import (
	"context"
	"errors"

	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/serr"
)

// Parse runs the tokens through a parser built from the table with the given
// ID. Every derivation of a stored table is handled with lr.Concat, so the
// root's Data is the data of every token joined by spaces.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no table with that ID
// exists, it will match serr.ErrNotFound. If the parser rejects the tokens,
// it will match serr.ErrRejected along with the lr error that caused it, such
// as lr.ErrSyntax. If the ID is not valid or there are no tokens, it will
// match serr.ErrBadArgument.
func (svc *Service) Parse(ctx context.Context, id string, tokens []lr.Token) (*lr.Node, error) {
	if len(tokens) < 1 {
		return nil, serr.New("at least one token is required", serr.ErrBadArgument)
	}

	t, err := svc.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}

	p, ok := svc.cachedParser(t.ID)
	if !ok {
		p, err = lr.New(t.Table, lr.Uniform(t.Table, lr.Concat))
		if err != nil {
			return nil, serr.New("could not create parser", err, serr.ErrInvalidTable)
		}
		p.SetStepLimit(svc.StepLimit)
		svc.cacheParser(t.ID, p)
	}

	tree, err := p.Parse(tokens)
	if err != nil {
		if errors.Is(err, lr.ErrStepLimit) {
			return nil, serr.New("table does not terminate on this input", err, serr.ErrInvalidTable)
		}
		return nil, serr.Reject(err)
	}

	return tree, nil
}

// Calc evaluates an arithmetic expression with the built-in calculator and
// returns its value along with its parse tree.
//
// If expr is not a valid expression, the returned error will match
// serr.ErrRejected and can be converted to a *calc.SyntaxError with
// errors.As.
func (svc *Service) Calc(ctx context.Context, expr string) (string, *lr.Node, error) {
	tree, err := svc.calc.Tree(expr)
	if err != nil {
		var synErr *calc.SyntaxError
		if errors.As(err, &synErr) {
			return "", nil, serr.Reject(err)
		}
		return "", nil, err
	}

	return tree.Data, tree, nil
}
