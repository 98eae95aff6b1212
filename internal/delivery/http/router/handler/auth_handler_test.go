package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/delivery/http/validator"
	domainerrors "bookstore/internal/domain/errors"
	mockUC "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: logger})

	return h, userUC
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{Token: "signed.jwt.token", Username: "reader"}, nil)

	e := newTestEcho()
	body := `{"email":"reader@example.com","username":"reader","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
	assert.Contains(t, rec.Body.String(), `"username":"reader"`)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := newTestEcho()
	body := `{"email":"not-an-email","username":"reader","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := newTestEcho()
	body := `{"email":"reader@example.com","username":"reader","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	e := newTestEcho()
	body := `{"email":"reader@example.com","username":"reader","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{Token: "signed.jwt.token", Username: "reader"}, nil)

	e := newTestEcho()
	body := `{"email":"reader@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, userUC := newAuthHandler(t)

	userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	e := newTestEcho()
	body := `{"email":"reader@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
