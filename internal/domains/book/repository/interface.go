package repository

import (
	"context"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
)

// RepositoryInterface - Định nghĩa data access methods.
// Mỗi method là một SQL statement duy nhất, atomic ở storage level.
type RepositoryInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)
	CreateBook(ctx context.Context, book *model.Book) (int64, error)
	UpdateBook(ctx context.Context, book *model.Book) error
	DeleteBook(ctx context.Context, id int64) error
}
