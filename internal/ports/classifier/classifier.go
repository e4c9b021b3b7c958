package classifier

import (
	"context"
	"errors"
	"fmt"
)

// Label es la etiqueta normalizada que devuelve un proveedor.
type Label struct {
	Name  string
	Score *float64
}

// ImageClassifier etiqueta una imagen. Hay una implementación por proveedor.
type ImageClassifier interface {
	Classify(ctx context.Context, image []byte, contentType string) (Label, error)
}

type Code string

const (
	CodeConfig   Code = "config"
	CodeNetwork  Code = "network"
	CodeProvider Code = "provider"
	CodeNoLabel  Code = "no_label"
)

// Error es el error tipado que exponen los adapters de IA.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf devuelve el código de un *Error en la cadena, o "" si no hay.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
