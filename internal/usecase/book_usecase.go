package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
)

// CreateBookInput defines the data required to add a book to the catalog.
type CreateBookInput struct {
	Name     string
	Price    float64
	Category string
	Author   string
}

// UpdateBookInput carries a partial update: only non-nil fields overwrite the
// stored document, absent fields are left unchanged.
type UpdateBookInput struct {
	Name     *string
	Price    *float64
	Category *string
	Author   *string
}

// BookUsecase defines the interface for book-related business operations.
type BookUsecase interface {
	// ListBooks returns the full catalog.
	ListBooks(ctx context.Context) ([]*entity.Book, error)

	// GetBook retrieves a single book by its identifier.
	GetBook(ctx context.Context, id string) (*entity.Book, error)

	// CreateBook validates the input and adds a new book to the catalog.
	CreateBook(ctx context.Context, input *CreateBookInput) (*entity.Book, error)

	// UpdateBook applies a partial update over the stored book.
	UpdateBook(ctx context.Context, id string, input *UpdateBookInput) (*entity.Book, error)

	// DeleteBook removes a book by its identifier.
	DeleteBook(ctx context.Context, id string) error
}
