package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/model"
	"sqlgate/pkg/server/store"
)

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// UserStore implements store.UserStore using GORM
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ByPhone fetches the stored credential record for phone.
func (s *UserStore) ByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	tx := s.db.WithContext(ctx).Where(&model.User{Phone: phone}).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.KindUserNotFound, "User not found", tx.Error)
		}
		return nil, apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", tx.Error)
	}
	return &user, nil
}
