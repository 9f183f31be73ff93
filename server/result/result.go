// Package result holds the outcomes of API endpoints and writes them out as
// HTTP responses.
//
// Every constructor that takes internalMsg treats it the same way: nothing
// given uses a generic message, a single value is used as-is, and more than
// one value is a format string followed by its arguments. The internal
// message is only ever logged, never sent to the client.
package result

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body of every JSON error response.
type ErrorResponse struct {
	Error  string     `json:"error"`
	Status int        `json:"status"`
	Detail *Rejection `json:"detail,omitempty"`
}

// Rejection tells a client where a parser stopped accepting its input.
type Rejection struct {
	// Position is the index of the offending token, or the 1-based column
	// for expressions.
	Position int `json:"position"`

	Symbol   string   `json:"symbol,omitempty"`
	State    *int     `json:"state,omitempty"`
	Expected []string `json:"expected,omitempty"`
}

// Result is the outcome of an endpoint. Create one with the constructors in
// this package; the zero value panics when written.
type Result struct {
	Status      int
	IsErr       bool
	IsJSON      bool
	InternalMsg string

	resp  interface{}
	redir string
	hdrs  [][2]string

	// set by calling PrepareMarshaledResponse.
	respJSONBytes []byte
}

func OK(respObj interface{}, internalMsg ...interface{}) Result {
	return success(http.StatusOK, respObj, internal("OK", internalMsg))
}

func Created(respObj interface{}, internalMsg ...interface{}) Result {
	return success(http.StatusCreated, respObj, internal("created", internalMsg))
}

func NoContent(internalMsg ...interface{}) Result {
	return success(http.StatusNoContent, nil, internal("no content", internalMsg))
}

func BadRequest(userMsg string, internalMsg ...interface{}) Result {
	return failure(http.StatusBadRequest, userMsg, nil, internal("bad request", internalMsg))
}

// Unauthorized includes the WWW-Authenticate header for bearer tokens. An
// empty userMsg gets a generic one.
func Unauthorized(userMsg string, internalMsg ...interface{}) Result {
	if userMsg == "" {
		userMsg = "You are not authorized to do that"
	}

	return failure(http.StatusUnauthorized, userMsg, nil, internal("unauthorized", internalMsg)).
		WithHeader("WWW-Authenticate", `Bearer realm="srparse server", charset="utf-8"`)
}

func NotFound(internalMsg ...interface{}) Result {
	return failure(http.StatusNotFound, "The requested resource was not found", nil, internal("not found", internalMsg))
}

func MethodNotAllowed(req *http.Request, internalMsg ...interface{}) Result {
	userMsg := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return failure(http.StatusMethodNotAllowed, userMsg, nil, internal("method not allowed", internalMsg))
}

func Conflict(userMsg string, internalMsg ...interface{}) Result {
	return failure(http.StatusConflict, userMsg, nil, internal("conflict", internalMsg))
}

// UnprocessableEntity is for well-formed requests whose input a parser
// rejected. detail is sent to the client along with userMsg.
func UnprocessableEntity(userMsg string, detail Rejection, internalMsg ...interface{}) Result {
	return failure(http.StatusUnprocessableEntity, userMsg, &detail, internal("unprocessable entity", internalMsg))
}

func InternalServerError(internalMsg ...interface{}) Result {
	return failure(http.StatusInternalServerError, "An internal server error occurred", nil, internal("internal server error", internalMsg))
}

// Err is a JSON error result with any status.
func Err(status int, userMsg, internalMsg string, v ...interface{}) Result {
	return failure(status, userMsg, nil, fmt.Sprintf(internalMsg, v...))
}

// TextErr is like Err but the body is userMsg as plain text, so writing it
// cannot fail to marshal.
func TextErr(status int, userMsg, internalMsg string, v ...interface{}) Result {
	r := failure(status, userMsg, nil, fmt.Sprintf(internalMsg, v...))
	r.IsJSON = false
	r.resp = userMsg
	return r
}

func Redirection(uri string) Result {
	return Result{
		Status:      http.StatusPermanentRedirect,
		InternalMsg: "redirect -> " + uri,
		redir:       uri,
	}
}

func success(status int, respObj interface{}, msg string) Result {
	return Result{
		IsJSON:      true,
		Status:      status,
		InternalMsg: msg,
		resp:        respObj,
	}
}

func failure(status int, userMsg string, detail *Rejection, msg string) Result {
	return Result{
		IsJSON:      true,
		IsErr:       true,
		Status:      status,
		InternalMsg: msg,
		resp: ErrorResponse{
			Error:  userMsg,
			Status: status,
			Detail: detail,
		},
	}
}

func internal(def string, args []interface{}) string {
	switch len(args) {
	case 0:
		return def
	case 1:
		return fmt.Sprintf("%v", args[0])
	default:
		return fmt.Sprintf(fmt.Sprintf("%v", args[0]), args[1:]...)
	}
}

// WithHeader returns a copy of r that also sets the given header.
func (r Result) WithHeader(name, val string) Result {
	hdrs := make([][2]string, len(r.hdrs), len(r.hdrs)+1)
	copy(hdrs, r.hdrs)

	r.hdrs = append(hdrs, [2]string{name, val})
	r.respJSONBytes = nil
	return r
}

// PrepareMarshaledResponse marshals the JSON body of r if it has one. It is
// safe to call more than once; only the first successful call marshals.
func (r *Result) PrepareMarshaledResponse() error {
	if r.respJSONBytes != nil || !r.hasBody() || !r.IsJSON {
		return nil
	}

	var err error
	r.respJSONBytes, err = json.Marshal(r.resp)
	return err
}

func (r Result) hasBody() bool {
	return r.Status != http.StatusNoContent && r.redir == ""
}

// WriteResponse writes r to w. It panics if r was never populated or its body
// cannot be marshaled; call PrepareMarshaledResponse first to check for that.
func (r Result) WriteResponse(w http.ResponseWriter) {
	if r.Status == 0 {
		panic("result not populated")
	}

	if err := r.PrepareMarshaledResponse(); err != nil {
		panic(fmt.Sprintf("could not marshal response: %s", err.Error()))
	}

	hdr := w.Header()
	hdr.Set("X-Content-Type-Options", "nosniff")
	if r.IsJSON {
		hdr.Set("Content-Type", "application/json")
	} else {
		hdr.Set("Content-Type", "text/plain; charset=utf-8")
	}
	if r.redir != "" {
		hdr.Set("Location", r.redir)
	}
	for _, h := range r.hdrs {
		hdr.Set(h[0], h[1])
	}

	w.WriteHeader(r.Status)

	if !r.hasBody() {
		return
	}
	if r.IsJSON {
		w.Write(r.respJSONBytes)
	} else {
		fmt.Fprintf(w, "%v", r.resp)
	}
}
