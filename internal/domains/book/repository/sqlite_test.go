package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
	"github.com/Minerv04ka/lab7web2025/internal/domains/book/repository"
	"github.com/Minerv04ka/lab7web2025/internal/infrastructure/database"
)

func newTestRepo(t *testing.T) repository.RepositoryInterface {
	t.Helper()

	db := database.NewSQLiteDB(&database.DBConfig{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})

	ctx := context.Background()
	require.NoError(t, db.Connect(ctx))
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return repository.NewSQLiteRepository(db.DB)
}

func TestCreateBookAssignsIncrementingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateBook(ctx, &model.Book{Title: "A", Author: "B", Price: 1})
	require.NoError(t, err)

	second, err := repo.CreateBook(ctx, &model.Book{Title: "C", Author: "D", Price: 2})
	require.NoError(t, err)

	assert.Greater(t, first, int64(0))
	assert.Greater(t, second, first)
}

func TestIDNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateBook(ctx, &model.Book{Title: "A", Author: "B", Price: 1})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteBook(ctx, first))

	// AUTOINCREMENT đảm bảo id không bao giờ được cấp lại
	second, err := repo.CreateBook(ctx, &model.Book{Title: "C", Author: "D", Price: 2})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestGetBookByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateBook(ctx, &model.Book{Title: "Test Book", Author: "Test Author", Price: 9.99})
	require.NoError(t, err)

	book, err := repo.GetBookByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &model.Book{ID: id, Title: "Test Book", Author: "Test Author", Price: 9.99}, book)
}

func TestGetBookByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetBookByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestListBooksInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := repo.CreateBook(ctx, &model.Book{Title: title, Author: "A", Price: 1})
		require.NoError(t, err)
	}

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, books[i].Title)
	}
}

func TestListBooksEmptyReturnsSlice(t *testing.T) {
	repo := newTestRepo(t)

	books, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestUpdateBookReplacesAllFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateBook(ctx, &model.Book{Title: "Old", Author: "Old", Price: 1})
	require.NoError(t, err)

	err = repo.UpdateBook(ctx, &model.Book{ID: id, Title: "New", Author: "New", Price: 2})
	require.NoError(t, err)

	book, err := repo.GetBookByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &model.Book{ID: id, Title: "New", Author: "New", Price: 2}, book)
}

func TestUpdateBookNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateBook(context.Background(), &model.Book{ID: 999, Title: "T", Author: "A", Price: 1})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateBook(ctx, &model.Book{Title: "T", Author: "A", Price: 1})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBook(ctx, id))

	_, err = repo.GetBookByID(ctx, id)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBookNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteBook(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
