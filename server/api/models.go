package api

import (
	"time"

	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/dao"
)

type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		Engine string `json:"engine"`
	} `json:"version"`
}

// TableModel is a stored table. Table is omitted in listings.
type TableModel struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Created string    `json:"created,omitempty"`
	States  int       `json:"states"`
	Table   *lr.Table `json:"table,omitempty"`
}

type TokenModel struct {
	Symbol string `json:"symbol"`
	Data   string `json:"data"`
}

type ParseRequest struct {
	Tokens []TokenModel `json:"tokens"`
}

type NodeModel struct {
	Symbol   string      `json:"symbol"`
	Data     string      `json:"data"`
	Children []NodeModel `json:"children,omitempty"`
}

type ParseResponse struct {
	Data string    `json:"data"`
	Tree NodeModel `json:"tree"`
}

type CalcRequest struct {
	Expr string `json:"expr"`
}

type CalcResponse struct {
	Value string    `json:"value"`
	Tree  NodeModel `json:"tree"`
}

func tableModel(t dao.StoredTable, full bool) TableModel {
	m := TableModel{
		ID:      t.ID.String(),
		Name:    t.Name,
		Created: t.Created.Format(time.RFC3339),
		States:  t.Table.Len(),
	}
	if full {
		tCopy := t.Table.Copy()
		m.Table = &tCopy
	}
	return m
}

func nodeModel(n *lr.Node) NodeModel {
	m := NodeModel{
		Symbol: n.Symbol,
		Data:   n.Data,
	}
	for _, ch := range n.Children {
		m.Children = append(m.Children, nodeModel(ch))
	}
	return m
}

func tokensFromModels(models []TokenModel) []lr.Token {
	toks := make([]lr.Token, len(models))
	for i := range models {
		toks[i] = lr.NewToken(models[i].Symbol, models[i].Data)
	}
	return toks
}
