// Package srs has services for interacting with the srparse server backend
// decoupled from the API that accesses it.
package srs

import (
	"sync"

	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/google/uuid"
)

// DefaultStepLimit is the most shift and reduce steps a single parse may take
// unless a Service is given another limit.
const DefaultStepLimit = 1_000_000

// Service is a service for interacting with and modifying the srparse server
// backend. It performs the actions requested and makes calls to server
// persistence to preserve the backend state.
//
// Use New to create a Service.
type Service struct {

	// DB is the persistence store of the service.
	DB dao.Store

	// StepLimit bounds each parse run with a stored table so that a table
	// that cycles on some input cannot hold a request forever. It only
	// applies to parsers built after it is set.
	StepLimit int

	calc *calc.Calculator

	// parsers built from stored tables, keyed by table ID. Stored tables are
	// never modified in place so an entry stays valid until its table is
	// deleted.
	mtx     sync.Mutex
	parsers map[uuid.UUID]*lr.Parser
}

// New creates a Service that persists to db.
func New(db dao.Store) (*Service, error) {
	c, err := calc.New()
	if err != nil {
		return nil, err
	}

	return &Service{
		DB:        db,
		StepLimit: DefaultStepLimit,
		calc:      c,
		parsers:   make(map[uuid.UUID]*lr.Parser),
	}, nil
}

func (svc *Service) cachedParser(id uuid.UUID) (*lr.Parser, bool) {
	svc.mtx.Lock()
	defer svc.mtx.Unlock()

	p, ok := svc.parsers[id]
	return p, ok
}

func (svc *Service) cacheParser(id uuid.UUID, p *lr.Parser) {
	svc.mtx.Lock()
	defer svc.mtx.Unlock()

	svc.parsers[id] = p
}

func (svc *Service) evictParser(id uuid.UUID) {
	svc.mtx.Lock()
	defer svc.mtx.Unlock()

	delete(svc.parsers, id)
}
