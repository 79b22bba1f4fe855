package endpoints

import (
	"context"
	"sync"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/model"
	"sqlgate/pkg/server/store"
)

type fakeParameterStore struct {
	records map[string]*model.Parameter
}

func (f *fakeParameterStore) ByTable(_ context.Context, table string) (*model.Parameter, error) {
	record, ok := f.records[table]
	if !ok {
		return nil, apperr.New(apperr.KindTableNotGoverned, "Table is not governed")
	}
	return record, nil
}

type fakeUserStore struct {
	users map[string]*model.User
}

func (f *fakeUserStore) ByPhone(_ context.Context, phone string) (*model.User, error) {
	user, ok := f.users[phone]
	if !ok {
		return nil, apperr.New(apperr.KindUserNotFound, "User not found")
	}
	return user, nil
}

// fakeExecutionStore is safe for concurrent use so handler tests can hammer
// it from multiple goroutines.
type fakeExecutionStore struct {
	mu      sync.Mutex
	rows    []map[string]interface{}
	execErr error
	quErr   error
	tables  []string
	columns []store.Column

	execed  []string
	queried []string
}

func (f *fakeExecutionStore) Exec(_ context.Context, sql string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execed = append(f.execed, sql)
	return f.execErr
}

func (f *fakeExecutionStore) Query(_ context.Context, sql string, _ ...interface{}) ([]map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, sql)
	if f.quErr != nil {
		return nil, f.quErr
	}
	return f.rows, nil
}

func (f *fakeExecutionStore) Tables(_ context.Context) ([]string, error) {
	return f.tables, nil
}

func (f *fakeExecutionStore) Columns(_ context.Context, table string) ([]store.Column, error) {
	if len(f.columns) == 0 {
		return nil, apperr.New(apperr.KindTableNotFound, "Table not found")
	}
	return f.columns, nil
}
