package store

import (
	"context"

	"sqlgate/pkg/model"
)

// UserStore abstracts login credential lookups.
type UserStore interface {
	// ByPhone fetches the stored phone + OTP-hash pair for phone.
	ByPhone(ctx context.Context, phone string) (*model.User, error)
}
