package core

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrNoActingUser rejects mutations attempted without an authenticated user.
var ErrNoActingUser = errors.New("you must be logged in to perform this action")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// AuthError carries the identity provider's own rejection message so callers
// can render it as-is.
type AuthError struct {
	Op  string // "signup" | "signin" | "signout"
	Msg string
}

func NewAuthError(op, msg string) error {
	return &AuthError{Op: op, Msg: msg}
}

func (err AuthError) Error() string {
	return err.Msg
}

func IsAuthError(err error) bool {
	var aerr *AuthError
	return errors.As(err, &aerr)
}

// TranslateValidatorError converts raw validator.ValidationErrors into our
// ValidationError with human-readable, translated field messages.
// Any other error passes through untouched.
func TranslateValidatorError(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return NewValidationError(err, flds...)
}
