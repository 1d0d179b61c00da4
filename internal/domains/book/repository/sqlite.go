package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
)

// sqliteRepository - Raw SQL with database/sql
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository - Constructor
func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// ListBooks trả về toàn bộ books theo thứ tự insert (natural scan order).
// Luôn trả về slice (rỗng nếu chưa có record nào).
func (r *sqliteRepository) ListBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, author, price
FROM books
`)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Price); err != nil {
			return nil, fmt.Errorf("scan book row failed: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *sqliteRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	err := r.db.QueryRowContext(ctx, `
SELECT id, title, author, price
FROM books
WHERE id = ?
`, id).Scan(&book.ID, &book.Title, &book.Author, &book.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book query failed: %w", err)
	}
	return &book, nil
}

// CreateBook insert record mới, storage assign id (AUTOINCREMENT).
func (r *sqliteRepository) CreateBook(ctx context.Context, book *model.Book) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO books (title, author, price)
VALUES (?, ?, ?)
`, book.Title, book.Author, book.Price)
	if err != nil {
		return 0, fmt.Errorf("insert book failed: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("fetch inserted book id failed: %w", err)
	}
	return id, nil
}

// UpdateBook overwrite cả ba business fields in place; id không đổi.
func (r *sqliteRepository) UpdateBook(ctx context.Context, book *model.Book) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE books
SET title = ?, author = ?, price = ?
WHERE id = ?
`, book.Title, book.Author, book.Price, book.ID)
	if err != nil {
		return fmt.Errorf("update book failed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("fetch affected rows failed: %w", err)
	}
	if affected == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *sqliteRepository) DeleteBook(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM books
WHERE id = ?
`, id)
	if err != nil {
		return fmt.Errorf("delete book failed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("fetch affected rows failed: %w", err)
	}
	if affected == 0 {
		return model.ErrBookNotFound
	}
	return nil
}
