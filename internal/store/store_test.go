package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wouterdom/kookboek/internal/db"
)

// openTestDB opens a migrated, seeded database in a temp directory.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(t.TempDir() + "/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}
