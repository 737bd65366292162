// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// InTx runs fn inside a transaction when q can open one, otherwise directly on q
func InTx(ctx context.Context, q Queryer, fn func(q Queryer) error) error {
	if tx, ok := q.(TxRunner); ok {
		return tx.Tx(ctx, fn)
	}
	return fn(q)
}
