// Package server provides an HTTP REST server that stores action tables and
// runs token sequences and arithmetic expressions through parsers built from
// them.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/api"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/dekarrin/srparse/server/serr"
	"github.com/dekarrin/srparse/server/srs"
	"github.com/dekarrin/srparse/server/token"
)

// server:
//	- GET    /info              - get version info on the server and engine.
//	- GET    /tables            - list stored tables (auth not required)
//	- POST   /tables            - store a new table (auth required)
//	- GET    /tables/{id}       - get a table and its contents (auth not required)
//	- DELETE /tables/{id}       - delete a table (auth required)
//	- POST   /tables/{id}/parse - run tokens through the table's parser
//	- POST   /calc              - evaluate an arithmetic expression

// Server is an HTTP REST server that provides parsing of token sequences with
// stored action tables. The zero-value of a Server should not be used
// directly; call New() to get one ready for use.
type Server struct {
	router http.Handler
	api    api.API
	db     dao.Store
	cfg    Config
}

// New creates a new Server from cfg. Defaults are filled in for any unset
// values in cfg before it is validated. Every table in cfg.Tables is loaded
// and stored if one with the same name is not already present.
func New(cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := cfg.DB.Connect()
	if err != nil {
		return nil, err
	}

	svc, err := srs.New(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	srv := &Server{
		db:  db,
		cfg: cfg,
		api: api.API{
			Backend:     svc,
			UnauthDelay: cfg.UnauthDelay(),
			Secret:      cfg.TokenSecret,
		},
	}

	for _, path := range cfg.Tables {
		if err := srv.preload(context.Background(), path); err != nil {
			db.Close()
			return nil, err
		}
	}

	srv.router = newRouter(srv.api)

	return srv, nil
}

func (srv *Server) preload(ctx context.Context, path string) error {
	t, err := lr.LoadTable(path)
	if err != nil {
		return fmt.Errorf("preload table: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	stored, err := srv.api.Backend.CreateTable(ctx, name, t)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			log.Info("table already stored; skipping preload", "name", name, "path", path)
			return nil
		}
		return fmt.Errorf("preload table %s: %w", path, err)
	}

	log.Info("preloaded table", "name", stored.Name, "id", stored.ID, "states", stored.Table.Len())
	return nil
}

// Handler returns the handler that serves all routes of the server.
func (srv *Server) Handler() http.Handler {
	return srv.router
}

// IssueToken creates a token that clients can use to authenticate as subject.
// The token expires after ttl; if ttl is zero or less it never expires.
func (srv *Server) IssueToken(subject string, ttl time.Duration) (string, error) {
	return token.Generate(srv.cfg.TokenSecret, subject, ttl)
}

// ServeForever begins listening on the configured address for HTTP REST
// client requests. It returns only when the listener fails.
func (srv *Server) ServeForever() error {
	log.Info("listening", "address", srv.cfg.ListenAddress, "db", srv.cfg.DB.Type)
	return http.ListenAndServe(srv.cfg.ListenAddress, srv.router)
}

// Close closes the connection to the backing store.
func (srv *Server) Close() error {
	return srv.db.Close()
}
