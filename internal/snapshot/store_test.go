package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rare-disease-dx/internal/domain"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestSQLiteStore(t *testing.T, dbPath, slot string) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(context.Background(), dbPath, slot, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// storeFactories covers every backend with the same slot contract.
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"file": func(t *testing.T) Store {
			store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "session-default.json"))
			require.NoError(t, err)
			return store
		},
		"sqlite": func(t *testing.T) Store {
			return newTestSQLiteStore(t, filepath.Join(t.TempDir(), "session.db"), "default")
		},
	}
}

func TestStore_Contract(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t)

			// Empty slot
			_, err := store.Get(ctx)
			require.ErrorIs(t, err, domain.ErrSnapshotAbsent)

			// Put then Get
			require.NoError(t, store.Put(ctx, []byte(`{"a":1}`)))
			got, err := store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), got)

			// Overwrite
			require.NoError(t, store.Put(ctx, []byte(`{"a":2}`)))
			got, err = store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), got)

			// Delete is idempotent
			require.NoError(t, store.Delete(ctx))
			require.NoError(t, store.Delete(ctx))
			_, err = store.Get(ctx)
			assert.ErrorIs(t, err, domain.ErrSnapshotAbsent)
		})
	}
}

func TestStore_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, store := range []Store{NewMemoryStore(), mustFileStore(t)} {
		assert.ErrorIs(t, store.Put(ctx, []byte("x")), context.Canceled)
		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Delete(ctx), context.Canceled)
	}
}

func mustFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	data := []byte("abc")

	require.NoError(t, store.Put(ctx, data))
	data[0] = 'X'
	got, err := store.Get(ctx)
	require.NoError(t, err)
	got[1] = 'Y'

	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "session-default.json"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Put(ctx, []byte("payload")))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session-default.json", entries[0].Name())
	assert.Equal(t, filepath.Join(dir, "session-default.json"), store.Path())
}

func TestFileStore_ReadError(t *testing.T) {
	dir := t.TempDir()
	// A directory at the snapshot path cannot be read as a file.
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.Mkdir(path, 0755))
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrSnapshotAbsent))
}

func TestSQLiteStore_SlotsShareDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")
	first := newTestSQLiteStore(t, dbPath, "first")
	second := newTestSQLiteStore(t, dbPath, "second")

	require.NoError(t, first.Put(ctx, []byte("one")))

	_, err := second.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrSnapshotAbsent)
	got, err := first.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	store, err := NewSQLiteStore(ctx, dbPath, "default", quietLogger())
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, []byte("persisted")))
	require.NoError(t, store.Close())

	// Migrations are already applied on the second open.
	reopened := newTestSQLiteStore(t, dbPath, "default")
	got, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestNewSQLiteStore_EmptySlot(t *testing.T) {
	_, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "s.db"), "", quietLogger())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slot", verr.Field)
}

func setupMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newSQLiteStore(db, "default"), mock
}

func TestSQLiteStore_PutError(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectExec("INSERT INTO session_snapshots").
		WithArgs("default", []byte("data"), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := store.Put(context.Background(), []byte("data"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save snapshot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetNoRows(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT payload FROM session_snapshots").
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := store.Get(context.Background())

	assert.ErrorIs(t, err, domain.ErrSnapshotAbsent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetError(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT payload FROM session_snapshots").
		WithArgs("default").
		WillReturnError(errors.New("database is locked"))

	_, err := store.Get(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrSnapshotAbsent))
	assert.Contains(t, err.Error(), "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_DeleteError(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectExec("DELETE FROM session_snapshots").
		WithArgs("default").
		WillReturnError(errors.New("readonly database"))

	err := store.Delete(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete snapshot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateDatabase_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	require.NoError(t, migrateDatabase(context.Background(), dbPath, quietLogger()))

	// Second run is a no-op.
	require.NoError(t, migrateDatabase(context.Background(), dbPath, quietLogger()))

	store := newTestSQLiteStore(t, dbPath, "default")
	require.NoError(t, store.Put(context.Background(), []byte("x")))
}

func TestMigrationRunner_UpDown(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "runner.db"))
	require.NoError(t, err)
	runner, err := NewMigrationRunner(db, quietLogger())
	require.NoError(t, err)
	defer runner.Close()

	require.NoError(t, runner.Up(ctx))
	version, dirty, err := runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, runner.Down(ctx))
	_, _, err = runner.Version()
	assert.ErrorIs(t, err, migrate.ErrNilVersion)
}
