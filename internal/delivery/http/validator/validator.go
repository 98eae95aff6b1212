// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import "github.com/go-playground/validator/v10"

// CustomValidator wraps a single validator instance; validator caches struct
// metadata internally, so one instance is shared by all requests.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator. The raw validation error is returned;
// handlers decide how to surface it.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
