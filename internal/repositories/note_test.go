package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNoteRepositories(t *testing.T, db *sqlx.DB) {
	ctx := context.Background()
	writeRepo := NewNoteWriteRepository(db)
	readRepo := NewNoteReadRepository(db, nil)

	alice := saveUser(t, db, "Alice", "alice@example.com")
	bob := saveUser(t, db, "Bob", "bob@example.com")
	const day = "2024-03-01"

	t.Run("Get missing", func(t *testing.T) {
		note, err := readRepo.Get(ctx, alice, day)
		require.NoError(t, err)
		assert.Nil(t, note)
	})

	t.Run("Upsert creates", func(t *testing.T) {
		note, err := writeRepo.Upsert(ctx, alice, day, "felt great")
		require.NoError(t, err)
		assert.Equal(t, "felt great", note.Note)

		got, err := readRepo.Get(ctx, alice, day)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "felt great", got.Note)
		assert.Equal(t, day, got.Date)
	})

	t.Run("Upsert overwrites", func(t *testing.T) {
		_, err := writeRepo.Upsert(ctx, alice, day, "cheat day")
		require.NoError(t, err)

		got, err := readRepo.Get(ctx, alice, day)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "cheat day", got.Note)
	})

	t.Run("notes are per user", func(t *testing.T) {
		got, err := readRepo.Get(ctx, bob, day)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		n, err := writeRepo.Delete(ctx, alice, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := readRepo.Get(ctx, alice, day)
		require.NoError(t, err)
		assert.Nil(t, got)

		n, err = writeRepo.Delete(ctx, alice, day)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestNoteRepositories_SQLite(t *testing.T) {
	testNoteRepositories(t, setupSQLite(t))
}

func TestNoteRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testNoteRepositories(t, setupPostgres(t))
}

func TestNoteRepositories_DBErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	t.Run("Get", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM day_notes").WillReturnError(dbErr)

		note, err := NewNoteReadRepository(db, nil).Get(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, note)
	})

	t.Run("Upsert", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO day_notes").WillReturnError(dbErr)

		note, err := NewNoteWriteRepository(db).Upsert(ctx, 1, "2024-03-01", "x")
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, note)
	})

	t.Run("Delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM day_notes").WillReturnError(dbErr)

		_, err := NewNoteWriteRepository(db).Delete(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, dbErr)
	})
}
