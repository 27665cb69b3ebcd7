package errs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type ErrType string

const (
	INTERNAL_ERROR  ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR ErrType = "BAD INPUT ERROR"
	UNKNOWN_ERROR   ErrType = "UNKNOWN ERROR"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// 内部的なエラー
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}
func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

// ユーザー起因の無効な入力や、入力したコードの実行時エラー
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *BadInputError) Unwrap() error {
	return e.wrapped
}

// ErrTypeOf はエラーの種別を判定する
func ErrTypeOf(err error) ErrType {
	var internalErr *InternalError
	var badInputErr *BadInputError
	switch {
	case errors.As(err, &internalErr):
		return INTERNAL_ERROR
	case errors.As(err, &badInputErr):
		return BAD_INPUT_ERROR
	default:
		return UNKNOWN_ERROR
	}
}

// エラーを処理する関数
func HandleError(err error) {
	FprintError(os.Stdout, err)
}

// FprintError はエラー種別のタグをつけてエラーを書き出す
func FprintError(w io.Writer, err error) {
	msg := fmt.Sprintf("[%s]\n %s", ErrTypeOf(err), err.Error())
	fmt.Fprintf(w, "\n%s\n\n", errStyle.Render(msg))
}
