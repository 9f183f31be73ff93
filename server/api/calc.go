package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/server/result"
)

// HTTPCalc returns a HandlerFunc that evaluates an arithmetic expression with
// the built-in calculator.
func (api API) HTTPCalc() http.HandlerFunc {
	return api.Endpoint(api.epCalc)
}

func (api API) epCalc(req *http.Request) result.Result {
	var calcReq CalcRequest
	if err := parseJSON(req, &calcReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	value, tree, err := api.Backend.Calc(req.Context(), calcReq.Expr)
	if err != nil {
		var synErr *calc.SyntaxError
		if errors.As(err, &synErr) {
			detail := result.Rejection{Position: synErr.Position()}
			return result.UnprocessableEntity(synErr.Message(), detail, "expression %q rejected: %s", calcReq.Expr, synErr.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := CalcResponse{
		Value: value,
		Tree:  nodeModel(tree),
	}
	return result.OK(resp, "evaluated %q = %s", calcReq.Expr, value)
}
