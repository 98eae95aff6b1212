package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/errors"
	"bookstore/internal/usecase"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo: params.BookRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBooks returns the full catalog.
func (srv *bookService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list books", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook retrieves a single book by its identifier.
func (srv *bookService) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("book not found")
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return book, nil
}

// CreateBook validates the required fields before delegating to the repository.
func (srv *bookService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	if err := validateBookInput(input); err != nil {
		srv.log(ctx).Warn("Book validation failed", slog.Any("error", err))

		return nil, err
	}

	book := &entity.Book{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
		Author:   strings.TrimSpace(input.Author),
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Error("Failed to create book", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Debug("Book created", slog.String("bookID", book.ID))

	return book, nil
}

// UpdateBook applies only the fields present in the partial input over the
// stored document, leaving absent fields unchanged. The conditional replace
// in the repository is the backstop for a concurrent delete between the read
// and the write.
func (srv *bookService) UpdateBook(ctx context.Context, id string, input *usecase.UpdateBookInput) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("book not found")
		}

		return nil, errors.Wrap(err, "failed to find book for update")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("book name must not be empty")
		}
		book.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
		}
		book.Price = *input.Price
	}
	if input.Category != nil {
		if strings.TrimSpace(*input.Category) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category must not be empty")
		}
		book.Category = strings.TrimSpace(*input.Category)
	}
	if input.Author != nil {
		if strings.TrimSpace(*input.Author) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("author must not be empty")
		}
		book.Author = strings.TrimSpace(*input.Author)
	}

	if err := srv.bookRepo.Update(ctx, id, book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("book disappeared during update")
		}

		srv.log(ctx).Error("Failed to update book", slog.String("bookID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update book")
	}

	return book, nil
}

// DeleteBook removes a book by its identifier. The existence check keeps the
// original contract of a 404 before the delete; the delete itself is a single
// conditional operation, so a concurrent remove still reports not-found.
func (srv *bookService) DeleteBook(ctx context.Context, id string) error {
	exists, err := srv.bookRepo.Exists(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check book existence")
	}
	if !exists {
		return domainerrors.ErrBookNotFound.WrapMessage("book not found")
	}

	if err := srv.bookRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return domainerrors.ErrBookNotFound.WrapMessage("book disappeared during delete")
		}

		srv.log(ctx).Error("Failed to delete book", slog.String("bookID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete book")
	}

	srv.log(ctx).Debug("Book deleted", slog.String("bookID", id))

	return nil
}

func validateBookInput(input *usecase.CreateBookInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("book name is required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}
	if strings.TrimSpace(input.Category) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}
	if strings.TrimSpace(input.Author) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("author is required")
	}

	return nil
}
