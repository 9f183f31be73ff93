// Package middle contains middleware for use with the srparse server.
package middle

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dekarrin/srparse/server/result"
	"github.com/dekarrin/srparse/server/token"
)

// Middleware is a function that takes a handler and returns a new handler which
// wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// AuthKey is a key in the context of a request populated by an AuthHandler.
type AuthKey int64

const (
	AuthLoggedIn AuthKey = iota
	AuthSubject
)

// AuthHandler is middleware that will accept a request, extract the token used
// for authentication, and validate it.
//
// Keys are added to the request context before the request is passed to the
// next step in the chain. AuthSubject will contain the subject the token was
// issued to, and AuthLoggedIn will return whether the client presented a valid
// token (only applies for optional auth; for required auth, a missing or bad
// token results in an HTTP error before the request is passed on).
type AuthHandler struct {
	secret        []byte
	required      bool
	unauthedDelay time.Duration
	next          http.Handler
}

func (ah *AuthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var loggedIn bool
	var subject string

	tok, err := token.Get(req)
	if err == nil {
		subject, err = token.Validate(tok, ah.secret)
		loggedIn = err == nil
	}

	if err != nil && ah.required {
		r := result.Unauthorized("", err.Error())
		log.Warn("rejected request", "method", req.Method, "path", req.URL.Path, "status", r.Status, "reason", r.InternalMsg)
		time.Sleep(ah.unauthedDelay)
		r.WriteResponse(w)
		return
	}

	if !loggedIn {
		subject = ""
	}

	ctx := req.Context()
	ctx = context.WithValue(ctx, AuthLoggedIn, loggedIn)
	ctx = context.WithValue(ctx, AuthSubject, subject)
	req = req.WithContext(ctx)
	ah.next.ServeHTTP(w, req)
}

// RequireAuth returns middleware that rejects any request that does not carry
// a valid token signed with secret.
func RequireAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{
			secret:        secret,
			unauthedDelay: unauthDelay,
			required:      true,
			next:          next,
		}
	}
}

// OptionalAuth returns middleware that records whether a request carries a
// valid token but lets it through either way.
func OptionalAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{
			secret:        secret,
			unauthedDelay: unauthDelay,
			required:      false,
			next:          next,
		}
	}
}
