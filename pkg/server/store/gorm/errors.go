package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"

	"sqlgate/pkg/apperr"
)

// SQLSTATE codes the engine distinguishes from generic failure.
const (
	codeUniqueViolation = "23505"
	codeUndefinedTable  = "42P01"
)

// sqlState extracts the SQLSTATE code from a driver error. The runtime pools
// go through pgx while lib/pq backs the migration tooling, so both error
// types are handled.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// translate maps a driver error to exactly one taxonomy member, with
// execution-failed as the total fallback.
func translate(err error) error {
	switch sqlState(err) {
	case codeUniqueViolation:
		return apperr.Wrap(apperr.KindDuplicateEntry, "Entry already exist", err)
	case codeUndefinedTable:
		return apperr.Wrap(apperr.KindTableNotFound, "Table not found", err)
	}
	return apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
}
