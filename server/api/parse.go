package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/result"
	"github.com/dekarrin/srparse/server/serr"
)

// HTTPParse returns a HandlerFunc that runs a token sequence through the
// parser of a stored table. Every reduction concatenates the data of its
// children, so the returned data is all the token data joined by spaces.
func (api API) HTTPParse() http.HandlerFunc {
	return api.Endpoint(api.epParse)
}

func (api API) epParse(req *http.Request) result.Result {
	id := requireIDParam(req)

	var parseReq ParseRequest
	if err := parseJSON(req, &parseReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	tree, err := api.Backend.Parse(req.Context(), id.String(), tokensFromModels(parseReq.Tokens))
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		} else if errors.Is(err, serr.ErrRejected) {
			return rejection(err)
		}
		return result.InternalServerError(err.Error())
	}

	resp := ParseResponse{
		Data: tree.Data,
		Tree: nodeModel(tree),
	}
	return result.OK(resp, "parsed %d token(s) with table %s", len(parseReq.Tokens), id)
}

// rejection gives the result for input that a parser refused. Errors that
// come from a broken table rather than the input are server errors.
func rejection(err error) result.Result {
	var synErr *lr.SyntaxError
	var eoiErr *lr.UnexpectedEndOfInputError

	if errors.As(err, &synErr) {
		state := synErr.State
		detail := result.Rejection{
			Position: synErr.Position,
			Symbol:   synErr.Symbol,
			State:    &state,
			Expected: synErr.Expected,
		}
		return result.UnprocessableEntity(synErr.Error(), detail, "tokens rejected: %s", err.Error())
	} else if errors.As(err, &eoiErr) {
		detail := result.Rejection{Position: eoiErr.Position}
		return result.UnprocessableEntity(eoiErr.Error(), detail, "tokens rejected: %s", err.Error())
	}

	return result.InternalServerError("table could not parse input: %s", err.Error())
}
