// Package sheets defines the outbound ports for the tabular ledger store.
package sheets

import "context"

type (
	// RowLister performs a full scan of the ledger worksheet. The first
	// row is the header row; cells come back as raw strings exactly as
	// the store renders them.
	RowLister interface {
		ListRows(ctx context.Context) ([][]string, error)
	}

	// RowAppender appends one row in the persisted column order. The
	// append is atomic from the engine's perspective: either the row
	// appears or an error is returned.
	RowAppender interface {
		AppendRow(ctx context.Context, values []string) (rowRef string, err error)
	}
)
