package gorm

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/server/store"
)

// Ensure ExecutionStore implements store.ExecutionStore
var _ store.ExecutionStore = (*ExecutionStore)(nil)

// ExecutionStore implements store.ExecutionStore against the transaction
// database. Each call runs in its own transaction; the connection scope is
// released on every exit path.
type ExecutionStore struct {
	db *gorm.DB
}

// NewExecutionStore creates a new ExecutionStore
func NewExecutionStore(db *gorm.DB) *ExecutionStore {
	return &ExecutionStore{db: db}
}

// Exec runs a mutation statement transactionally. On failure the transaction
// is rolled back and the driver error is translated; nothing is retried.
func (s *ExecutionStore) Exec(ctx context.Context, sqlText string) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translate(tx.Error)
	}

	if err := tx.Exec(sqlText).Error; err != nil {
		tx.Rollback()
		return translate(err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return translate(err)
	}
	return nil
}

// Query runs a select statement and materializes the full result set before
// returning. Column names come from the result itself, so the endpoint stays
// schema-agnostic.
func (s *ExecutionStore) Query(ctx context.Context, sqlText string, args ...interface{}) ([]map[string]interface{}, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}

	rows, err := tx.Raw(sqlText, args...).Rows()
	if err != nil {
		tx.Rollback()
		return nil, translate(err)
	}

	results, err := collectRows(rows)
	_ = rows.Close()
	if err != nil {
		tx.Rollback()
		return nil, translate(err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, translate(err)
	}
	return results, nil
}

// Tables enumerates the public table names of the transaction database.
func (s *ExecutionStore) Tables(ctx context.Context) ([]string, error) {
	var tables []string
	tx := s.db.WithContext(ctx).Raw(
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		 ORDER BY table_name`,
	).Scan(&tables)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return tables, nil
}

// Columns enumerates a table's columns with their type strings.
func (s *ExecutionStore) Columns(ctx context.Context, table string) ([]store.Column, error) {
	var columns []store.Column
	tx := s.db.WithContext(ctx).Raw(
		`SELECT column_name AS name, data_type AS type
		 FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = ?
		 ORDER BY ordinal_position`,
		table,
	).Scan(&columns)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if len(columns) == 0 {
		return nil, apperr.New(apperr.KindTableNotFound, "Table not found")
	}
	return columns, nil
}

// collectRows scans every row into a column-name keyed map. Byte slices are
// converted to strings so the result serializes as JSON text, not base64.
func collectRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
