package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
	"github.com/Minerv04ka/lab7web2025/internal/domains/book/repository"
)

type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService - Constructor with DI
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	log.Info().Msg("Fetching all books")
	return s.repo.ListBooks(ctx)
}

func (s *bookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	log.Info().Int64("book_id", id).Msg("Fetching book")
	return s.repo.GetBookByID(ctx, id)
}

// CreateBook insert record và trả về record đầy đủ với id đã assign.
func (s *bookService) CreateBook(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	book := req.Model()

	log.Info().Str("title", book.Title).Msg("Creating book")

	id, err := s.repo.CreateBook(ctx, &book)
	if err != nil {
		return nil, err
	}

	book.ID = id
	return &book, nil
}

// UpdateBook full replacement của cả ba business fields.
// ErrBookNotFound nếu id không tồn tại.
func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error) {
	book := req.Model()
	book.ID = id

	log.Info().Int64("book_id", id).Str("title", book.Title).Msg("Updating book")

	if err := s.repo.UpdateBook(ctx, &book); err != nil {
		return nil, err
	}

	return &book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	log.Info().Int64("book_id", id).Msg("Deleting book")
	return s.repo.DeleteBook(ctx, id)
}
