package store

import (
	"context"

	"sqlgate/pkg/model"
)

// ParameterStore abstracts permission matrix lookups against the parameter
// database. It is read-only from the gateway's perspective.
type ParameterStore interface {
	// ByTable resolves the PermissionRecord governing table. A table with no
	// record fails with a table-not-governed error, never an implicit allow.
	ByTable(ctx context.Context, table string) (*model.Parameter, error)
}
