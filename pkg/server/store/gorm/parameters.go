package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/model"
	"sqlgate/pkg/server/store"
)

// Ensure ParameterStore implements store.ParameterStore
var _ store.ParameterStore = (*ParameterStore)(nil)

// ParameterStore implements store.ParameterStore using GORM
type ParameterStore struct {
	db *gorm.DB
}

// NewParameterStore creates a new ParameterStore
func NewParameterStore(db *gorm.DB) *ParameterStore {
	return &ParameterStore{db: db}
}

// ByTable resolves the permission record governing table.
func (s *ParameterStore) ByTable(ctx context.Context, table string) (*model.Parameter, error) {
	var parameter model.Parameter
	tx := s.db.WithContext(ctx).Where(&model.Parameter{Table: table}).First(&parameter)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.KindTableNotGoverned, "Table is not governed", tx.Error)
		}
		return nil, apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", tx.Error)
	}
	return &parameter, nil
}

// Upsert inserts or updates one permission record, keyed by table name.
// Used by the administrative permission loader, never during request
// handling.
func (s *ParameterStore) Upsert(ctx context.Context, parameter *model.Parameter) error {
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tablename"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"databasename", "id_select", "id_insert", "id_update",
			"id_delete", "id_truncate", "id_drop", "id_alter", "id_token",
		}),
	}).Create(parameter)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	return nil
}
