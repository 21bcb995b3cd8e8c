package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Constraint names declared in the migrations.
const (
	constraintActiveSlot  = "uq_encounters_active_slot"
	constraintActiveOwner = "uq_hunts_active_owner"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

// violatesConstraint reports a unique violation on a specific index. GORM's
// translated ErrDuplicatedKey carries no name and is accepted for any index.
func violatesConstraint(err error, name string) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == name
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgCheckViolation
}
