package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/middle"
	"github.com/dekarrin/srparse/server/result"
	"github.com/dekarrin/srparse/server/serr"
)

type createTableRequest struct {
	Name  string    `json:"name"`
	Table *lr.Table `json:"table"`
}

// HTTPGetAllTables returns a HandlerFunc that lists the stored tables without
// their contents.
func (api API) HTTPGetAllTables() http.HandlerFunc {
	return api.Endpoint(api.epGetAllTables)
}

func (api API) epGetAllTables(req *http.Request) result.Result {
	tables, err := api.Backend.GetAllTables(req.Context())
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]TableModel, len(tables))
	for i := range tables {
		resp[i] = tableModel(tables[i], false)
	}

	return result.OK(resp, "got all tables (%d)", len(resp))
}

// HTTPGetTable returns a HandlerFunc that gets a single stored table along
// with its contents.
func (api API) HTTPGetTable() http.HandlerFunc {
	return api.Endpoint(api.epGetTable)
}

func (api API) epGetTable(req *http.Request) result.Result {
	id := requireIDParam(req)

	t, err := api.Backend.GetTable(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError(err.Error())
	}

	return result.OK(tableModel(t, true), "got table %s", id)
}

// HTTPCreateTable returns a HandlerFunc that stores a new table.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the subject of the logged-in client.
func (api API) HTTPCreateTable() http.HandlerFunc {
	return api.Endpoint(api.epCreateTable)
}

func (api API) epCreateTable(req *http.Request) result.Result {
	subj := req.Context().Value(middle.AuthSubject).(string)

	var createReq createTableRequest
	if err := parseJSON(req, &createReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}
	if createReq.Table == nil {
		return result.BadRequest("table: property is empty or missing from request", "empty table")
	}

	t, err := api.Backend.CreateTable(req.Context(), createReq.Name, *createReq.Table)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return result.Conflict("A table with that name already exists", "table '%s' already exists", createReq.Name)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	return result.Created(tableModel(t, false), "client '%s' created table %s (%q)", subj, t.ID, t.Name)
}

// HTTPDeleteTable returns a HandlerFunc that deletes a stored table.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the subject of the logged-in client.
func (api API) HTTPDeleteTable() http.HandlerFunc {
	return api.Endpoint(api.epDeleteTable)
}

func (api API) epDeleteTable(req *http.Request) result.Result {
	id := requireIDParam(req)
	subj := req.Context().Value(middle.AuthSubject).(string)

	t, err := api.Backend.DeleteTable(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not delete table: " + err.Error())
	}

	return result.NoContent("client '%s' deleted table %s (%q)", subj, t.ID, t.Name)
}
