// Package store defines the storage interfaces the gateway depends on.
// Implementations live in subpackages (currently only GORM/Postgres).
// Every implementation translates driver errors into the apperr taxonomy at
// this boundary, so callers never see raw driver errors.
package store
