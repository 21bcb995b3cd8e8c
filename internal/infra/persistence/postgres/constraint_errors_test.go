package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	slotErr := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintActiveSlot}, "insert")

	assert.True(t, isUniqueConstraintViolation(slotErr))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestViolatesConstraint_MatchesByName(t *testing.T) {
	slotErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintActiveSlot}

	assert.True(t, violatesConstraint(slotErr, constraintActiveSlot))
	assert.False(t, violatesConstraint(slotErr, constraintActiveOwner))
	assert.True(t, violatesConstraint(gorm.ErrDuplicatedKey, constraintActiveOwner))
}

func TestForeignKeyAndCheckViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}
