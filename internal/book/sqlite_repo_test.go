package book

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every pooled connection to :memory: would otherwise see its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepo(db, time.Second)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestSQLiteRepo_CreateAndGet(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, Book{Title: "Novo livro", Author: "Genin", ISBN: "777"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, ok, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Novo livro", found.Title)
	assert.Equal(t, "Genin", found.Author)
	assert.Equal(t, "777", found.ISBN)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestSQLiteRepo_GetMissing(t *testing.T) {
	repo := newSQLiteRepo(t)

	_, ok, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRepo_ExistsByISBN(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	exists, err := repo.ExistsByISBN(ctx, "777")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, Book{Title: "Novo livro", Author: "Genin", ISBN: "777"})
	require.NoError(t, err)

	exists, err = repo.ExistsByISBN(ctx, "777")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteRepo_UniqueIndexBackstop(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, Book{Title: "A", Author: "A", ISBN: "777"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, Book{Title: "B", Author: "B", ISBN: "777"})
	assert.ErrorIs(t, err, ErrDuplicateISBN)
}

func TestSQLiteRepo_Update(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, Book{Title: "A", Author: "A", ISBN: "1"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, Book{Title: "B", Author: "B", ISBN: "2"})
	require.NoError(t, err)

	first.Title = "New Title"
	updated, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)

	found, _, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", found.Title)

	second.ISBN = "1"
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	_, err = repo.Update(ctx, Book{ID: 999, Title: "x", Author: "x", ISBN: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepo_Delete(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, Book{Title: "A", Author: "A", ISBN: "1"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, ok, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestSQLiteRepo_Ping(t *testing.T) {
	repo := newSQLiteRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
