package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/domain/entity"
	"bookstore/internal/usecase"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
	Logger *slog.Logger
}

// BookHandler holds dependencies for book catalog handlers.
type BookHandler struct {
	bookUC usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler.
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		bookUC: params.BookUC,
		logger: params.Logger,
	}
}

// CreateBookRequest represents the request body for creating a book.
type CreateBookRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Author   string  `json:"author" validate:"required"`
}

// UpdateBookRequest represents a partial update; nil fields are left unchanged.
type UpdateBookRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Author   *string  `json:"author" validate:"omitempty,min=1"`
}

// BookResponse is the API representation of a book.
type BookResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Author   string  `json:"author"`
}

func toBookResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:       book.ID,
		Name:     book.Name,
		Price:    book.Price,
		Category: book.Category,
		Author:   book.Author,
	}
}

// ListBooks handles retrieving the full catalog.
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.bookUC.ListBooks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]BookResponse, 0, len(books))
	for _, book := range books {
		resp = append(resp, toBookResponse(book))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetBook handles retrieving a single book by id.
func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.bookUC.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// CreateBook handles adding a new book to the catalog.
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid book input", err.Error())
	}

	input := &usecase.CreateBookInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Author:   req.Author,
	}

	book, err := h.bookUC.CreateBook(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book))
}

// UpdateBook handles a partial update of an existing book.
func (h *BookHandler) UpdateBook(c echo.Context) error {
	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid book input", err.Error())
	}

	input := &usecase.UpdateBookInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Author:   req.Author,
	}

	book, err := h.bookUC.UpdateBook(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// DeleteBook handles removing a book from the catalog.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	if err := h.bookUC.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}
