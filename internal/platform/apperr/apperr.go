// Package apperr define los errores con código que los handlers serializan
// como {"error": code}.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
	KindTooLarge
)

// CodeInternal es el código por defecto de cualquier error no clasificado.
const CodeInternal = "internal_error"

// Error lleva el código máquina que ve el cliente.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind+Code para que los sentinels funcionen con errors.Is
// aunque el error venga envuelto con causa.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap devuelve una copia del sentinel con la causa adjunta.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Err: err}
}

func New(kind Kind, code string) *Error { return &Error{Kind: kind, Code: code} }

func Invalid(code string) *Error      { return New(KindInvalid, code) }
func Unauthorized(code string) *Error { return New(KindUnauthorized, code) }
func Forbidden(code string) *Error    { return New(KindForbidden, code) }
func NotFound(code string) *Error     { return New(KindNotFound, code) }
func Conflict(code string) *Error     { return New(KindConflict, code) }

// BadBody clasifica un error al leer el body: payload_too_large si se pasó
// del límite, invalid_json en cualquier otro caso.
func BadBody(err error) *Error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return New(KindTooLarge, "payload_too_large").Wrap(err)
	}
	return Invalid("invalid_json").Wrap(err)
}

// Resolve traduce err a status HTTP + código. Errores sin *Error son 500.
func Resolve(err error) (int, string) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, CodeInternal
	}
	return e.Kind.Status(), e.Code
}

func (k Kind) Status() int {
	switch k {
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
