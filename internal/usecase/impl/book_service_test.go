package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceFixture struct {
	bookRepo *mockRepo.MockBookRepository
	service  usecase.BookUsecase
}

func createTestBookService(t *testing.T) *bookServiceFixture {
	bookRepo := mockRepo.NewMockBookRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookService(BookServiceParams{
		BookRepo: bookRepo,
		Logger:   logger,
	})

	return &bookServiceFixture{
		bookRepo: bookRepo,
		service:  service,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestBookService_ListBooks_Success(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	books := []*entity.Book{
		{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93, Category: "Computers", Author: "Ralph Johnson"},
		{ID: "64f1a2b3c4d5e6f7a8b9c0d2", Name: "Clean Code", Price: 43.15, Category: "Computers", Author: "Robert C. Martin"},
	}

	fx.bookRepo.EXPECT().FindAll(ctx).Return(books, nil)

	got, err := fx.service.ListBooks(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, books, got)
}

func TestBookService_ListBooks_Empty(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().FindAll(ctx).Return([]*entity.Book{}, nil)

	got, err := fx.service.ListBooks(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookService_GetBook_Success(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	book := &entity.Book{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93}
	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)

	got, err := fx.service.GetBook(ctx, book.ID)

	require.NoError(t, err)
	assert.Equal(t, book, got)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrBookNotFound)

	got, err := fx.service.GetBook(ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_CreateBook_Success(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	input := &usecase.CreateBookInput{
		Name:     "  Design Patterns  ",
		Price:    54.93,
		Category: "Computers",
		Author:   "Ralph Johnson",
	}

	fx.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(ctx context.Context, e *entity.Book) {
			e.ID = "64f1a2b3c4d5e6f7a8b9c0d1" // store assigns the id on insert
		}).
		Return(nil)

	book, err := fx.service.CreateBook(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", book.ID)
	assert.Equal(t, "Design Patterns", book.Name)
	assert.Equal(t, 54.93, book.Price)
}

func TestBookService_CreateBook_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.CreateBookInput
	}{
		{"empty name", &usecase.CreateBookInput{Name: "   ", Price: 10, Category: "Computers", Author: "A"}},
		{"zero price", &usecase.CreateBookInput{Name: "Book", Price: 0, Category: "Computers", Author: "A"}},
		{"negative price", &usecase.CreateBookInput{Name: "Book", Price: -1, Category: "Computers", Author: "A"}},
		{"empty category", &usecase.CreateBookInput{Name: "Book", Price: 10, Category: "", Author: "A"}},
		{"empty author", &usecase.CreateBookInput{Name: "Book", Price: 10, Category: "Computers", Author: " "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestBookService(t)

			book, err := fx.service.CreateBook(context.Background(), tc.input)

			assert.Error(t, err)
			assert.Nil(t, book)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestBookService_UpdateBook_PartialLeavesOtherFields(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	stored := &entity.Book{
		ID:       "64f1a2b3c4d5e6f7a8b9c0d1",
		Name:     "Design Patterns",
		Price:    54.93,
		Category: "Computers",
		Author:   "Ralph Johnson",
	}

	fx.bookRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.bookRepo.EXPECT().
		Update(ctx, stored.ID, mock.AnythingOfType("*entity.Book")).
		Run(func(ctx context.Context, id string, e *entity.Book) {
			assert.Equal(t, "Design Patterns", e.Name)
			assert.Equal(t, 39.99, e.Price)
			assert.Equal(t, "Computers", e.Category)
			assert.Equal(t, "Ralph Johnson", e.Author)
		}).
		Return(nil)

	book, err := fx.service.UpdateBook(ctx, stored.ID, &usecase.UpdateBookInput{Price: floatPtr(39.99)})

	require.NoError(t, err)
	assert.Equal(t, 39.99, book.Price)
	assert.Equal(t, "Design Patterns", book.Name)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrBookNotFound)

	book, err := fx.service.UpdateBook(ctx, "missing", &usecase.UpdateBookInput{Name: strPtr("New Name")})

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_UpdateBook_InvalidFields(t *testing.T) {
	stored := &entity.Book{
		ID:    "64f1a2b3c4d5e6f7a8b9c0d1",
		Name:  "Design Patterns",
		Price: 54.93,
	}

	testCases := []struct {
		name  string
		input *usecase.UpdateBookInput
	}{
		{"empty name", &usecase.UpdateBookInput{Name: strPtr("  ")}},
		{"zero price", &usecase.UpdateBookInput{Price: floatPtr(0)}},
		{"empty category", &usecase.UpdateBookInput{Category: strPtr("")}},
		{"empty author", &usecase.UpdateBookInput{Author: strPtr(" ")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestBookService(t)
			ctx := context.Background()

			fx.bookRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

			book, err := fx.service.UpdateBook(ctx, stored.ID, tc.input)

			assert.Error(t, err)
			assert.Nil(t, book)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestBookService_UpdateBook_ConcurrentDelete(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	stored := &entity.Book{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93}

	fx.bookRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.bookRepo.EXPECT().
		Update(ctx, stored.ID, mock.AnythingOfType("*entity.Book")).
		Return(repository.ErrBookNotFound)

	book, err := fx.service.UpdateBook(ctx, stored.ID, &usecase.UpdateBookInput{Price: floatPtr(39.99)})

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_DeleteBook_Success(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	id := "64f1a2b3c4d5e6f7a8b9c0d1"
	fx.bookRepo.EXPECT().Exists(ctx, id).Return(true, nil)
	fx.bookRepo.EXPECT().Remove(ctx, id).Return(nil)

	err := fx.service.DeleteBook(ctx, id)

	assert.NoError(t, err)
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().Exists(ctx, "missing").Return(false, nil)

	err := fx.service.DeleteBook(ctx, "missing")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_DeleteBook_ConcurrentDelete(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	id := "64f1a2b3c4d5e6f7a8b9c0d1"
	fx.bookRepo.EXPECT().Exists(ctx, id).Return(true, nil)
	fx.bookRepo.EXPECT().Remove(ctx, id).Return(repository.ErrBookNotFound)

	err := fx.service.DeleteBook(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}
