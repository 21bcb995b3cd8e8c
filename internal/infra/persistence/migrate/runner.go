// Package migrate applies the embedded schema migrations with golang-migrate.
package migrate

import (
	"strings"

	"huntlog/internal/errors"
	"huntlog/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Run applies migrations in direction against dsn. Being already at the
// target version is not an error. A postgres:// or
// postgresql:// dsn is rewritten to the pgx5 scheme.
func Run(dsn, direction string) error {
	if dsn == "" {
		return errors.New("database dsn is empty")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Errorf("direction must be up or down, got %q", direction)
	}

	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "migrate source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, toPgx5DSN(dsn))
	if err != nil {
		return errors.Wrap(err, "migrate init")
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	return nil
}

func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}

	return dsn
}
