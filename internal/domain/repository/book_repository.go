package repository

import (
	"errors"

	"bookstore/internal/domain/entity"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
// The application layer will depend on this interface, not the concrete implementation.
type BookRepository interface {
	Repository[entity.Book]
}
