package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/cambium/pkg/adapters/sqlite"
	"github.com/aretw0/cambium/pkg/ports"
)

func openTestManager(t *testing.T) *sqlite.Manager {
	t.Helper()

	mgr, err := sqlite.Open(filepath.Join(t.TempDir(), "cambium.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mgr.Close() })

	_, err = mgr.DB().Exec(`CREATE TABLE marks (key TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return mgr
}

func TestSqliteManager_Contract(t *testing.T) {
	mgr := openTestManager(t)

	ports.RunManagerContract(t, mgr, ports.Harness{
		Mutate: func(ctx context.Context, tx ports.Tx, key string) error {
			_, err := tx.(*sqlite.Tx).ExecContext(ctx, `INSERT INTO marks (key) VALUES (?)`, key)
			return err
		},
		Visible: func(ctx context.Context, key string) (bool, error) {
			var n int
			err := mgr.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM marks WHERE key = ?`, key).Scan(&n)
			return n > 0, err
		},
	})
}

func TestOpen_RejectsEmptyPath(t *testing.T) {
	_, err := sqlite.Open("  ")
	require.Error(t, err)
}
