package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
	"github.com/Minerv04ka/lab7web2025/internal/domains/book/service"
)

// mockRepository - testify mock của RepositoryInterface
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListBooks(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockRepository) CreateBook(ctx context.Context, book *model.Book) (int64, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) UpdateBook(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *mockRepository) DeleteBook(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validRequest() model.BookRequest {
	return model.BookRequest{
		Title:  strPtr("Test Book"),
		Author: strPtr("Test Author"),
		Price:  floatPtr(9.99),
	}
}

func TestCreateBookAssignsID(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	repo.On("CreateBook", mock.Anything, &model.Book{
		Title:  "Test Book",
		Author: "Test Author",
		Price:  9.99,
	}).Return(int64(42), nil)

	book, err := svc.CreateBook(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), book.ID)
	assert.Equal(t, "Test Book", book.Title)
	repo.AssertExpectations(t)
}

func TestCreateBookRepositoryError(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	repo.On("CreateBook", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))

	_, err := svc.CreateBook(context.Background(), validRequest())
	assert.Error(t, err)
}

func TestUpdateBookKeepsID(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	repo.On("UpdateBook", mock.Anything, &model.Book{
		ID:     7,
		Title:  "Test Book",
		Author: "Test Author",
		Price:  9.99,
	}).Return(nil)

	book, err := svc.UpdateBook(context.Background(), 7, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), book.ID)
	repo.AssertExpectations(t)
}

func TestUpdateBookNotFoundPassthrough(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	repo.On("UpdateBook", mock.Anything, mock.Anything).Return(model.ErrBookNotFound)

	_, err := svc.UpdateBook(context.Background(), 999, validRequest())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBookNotFoundPassthrough(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	repo.On("DeleteBook", mock.Anything, int64(999)).Return(model.ErrBookNotFound)

	err := svc.DeleteBook(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestListBooksPassthrough(t *testing.T) {
	repo := new(mockRepository)
	svc := service.NewBookService(repo)

	expected := []model.Book{{ID: 1, Title: "T", Author: "A", Price: 1}}
	repo.On("ListBooks", mock.Anything).Return(expected, nil)

	books, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, books)
}
