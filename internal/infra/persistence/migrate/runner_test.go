package migrate

import (
	"io/fs"
	"testing"

	"huntlog/internal/infra/persistence/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@localhost:5432/db", want: "pgx5://u:p@localhost:5432/db"},
		{in: "postgresql://u@h/db?sslmode=disable", want: "pgx5://u@h/db?sslmode=disable"},
		{in: "pgx5://already", want: "pgx5://already"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.in))
		})
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	require.Error(t, Run("", DirectionUp))
	require.Error(t, Run("postgres://localhost/db", "sideways"))
}

func TestMigrations_ArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestMigrations_DeclareActiveSlotIndex(t *testing.T) {
	body, err := fs.ReadFile(migrations.FS, "000001_init.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "ON encounters (hunt_id, slot_number) WHERE is_deleted = false")
	assert.Contains(t, string(body), "ON hunts (owner_id) WHERE status = 'ACTIVE'")
}
