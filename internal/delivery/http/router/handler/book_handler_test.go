package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUC "bookstore/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookHandler(t *testing.T) (*BookHandler, *mockUC.MockBookUsecase) {
	bookUC := mockUC.NewMockBookUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewBookHandler(BookHandlerParams{BookUC: bookUC, Logger: logger})

	return h, bookUC
}

func TestBookHandler_ListBooks(t *testing.T) {
	h, bookUC := newBookHandler(t)

	books := []*entity.Book{
		{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93, Category: "Computers", Author: "Ralph Johnson"},
	}
	bookUC.EXPECT().ListBooks(mock.Anything).Return(books, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListBooks(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Design Patterns")
}

func TestBookHandler_ListBooks_EmptyIsArray(t *testing.T) {
	h, bookUC := newBookHandler(t)

	bookUC.EXPECT().ListBooks(mock.Anything).Return(nil, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListBooks(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The empty catalog must serialize as [] and not null.
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `[]`, string(body.Data))
}

func TestBookHandler_GetBook_Success(t *testing.T) {
	h, bookUC := newBookHandler(t)

	book := &entity.Book{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93}
	bookUC.EXPECT().GetBook(mock.Anything, book.ID).Return(book, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/books/"+book.ID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(book.ID)

	err := h.GetBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), book.ID)
}

func TestBookHandler_GetBook_NotFound(t *testing.T) {
	h, bookUC := newBookHandler(t)

	bookUC.EXPECT().GetBook(mock.Anything, "missing").Return(nil, domainerrors.ErrBookNotFound.WrapMessage("book not found"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/books/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BOOK_NOT_FOUND")
}

func TestBookHandler_CreateBook_Success(t *testing.T) {
	h, bookUC := newBookHandler(t)

	created := &entity.Book{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Design Patterns", Price: 54.93, Category: "Computers", Author: "Ralph Johnson"}
	bookUC.EXPECT().
		CreateBook(mock.Anything, mock.AnythingOfType("*usecase.CreateBookInput")).
		Return(created, nil)

	e := newTestEcho()
	body := `{"name":"Design Patterns","price":54.93,"category":"Computers","author":"Ralph Johnson"}`
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)
}

func TestBookHandler_CreateBook_ValidationFailure(t *testing.T) {
	h, _ := newBookHandler(t)

	e := newTestEcho()
	body := `{"name":"","price":-5,"category":"Computers","author":"Ralph Johnson"}`
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBookHandler_UpdateBook_PartialBody(t *testing.T) {
	h, bookUC := newBookHandler(t)

	id := "64f1a2b3c4d5e6f7a8b9c0d1"
	updated := &entity.Book{ID: id, Name: "Design Patterns", Price: 39.99, Category: "Computers", Author: "Ralph Johnson"}
	bookUC.EXPECT().
		UpdateBook(mock.Anything, id, mock.AnythingOfType("*usecase.UpdateBookInput")).
		Return(updated, nil)

	e := newTestEcho()
	body := `{"price":39.99}`
	req := httptest.NewRequest(http.MethodPut, "/api/books/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.UpdateBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":39.99`)
}

func TestBookHandler_DeleteBook_Success(t *testing.T) {
	h, bookUC := newBookHandler(t)

	id := "64f1a2b3c4d5e6f7a8b9c0d1"
	bookUC.EXPECT().DeleteBook(mock.Anything, id).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/books/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.DeleteBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book deleted successfully")
}

func TestBookHandler_DeleteBook_NotFound(t *testing.T) {
	h, bookUC := newBookHandler(t)

	bookUC.EXPECT().DeleteBook(mock.Anything, "missing").Return(domainerrors.ErrBookNotFound.WrapMessage("book not found"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/books/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.DeleteBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BOOK_NOT_FOUND")
}
