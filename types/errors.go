package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodeType - ABCI-style code identifier within a codespace
type CodeType uint32

// CodespaceType - codespace identifier
type CodespaceType string

// IsOK - is everything okay?
func (code CodeType) IsOK() bool {
	return code == CodeOK
}

// Base error codes shared by all modules. Module-specific codes start
// at 101 inside their own codespace.
const (
	CodeOK                  CodeType = 0
	CodeInternal            CodeType = 1
	CodeUnknownRequest      CodeType = 2
	CodeUnauthorized        CodeType = 3
	CodeInvalidAddress      CodeType = 4
	CodeInvalidTx           CodeType = 5
	CodeInvalidAmount       CodeType = 6
	CodeUnsupportedToken    CodeType = 7
	CodeSymbolAlreadyExists CodeType = 8
	CodeInsufficientCoins   CodeType = 9

	// CodespaceRoot is the codespace for error codes in this file only.
	CodespaceUndefined CodespaceType = ""
	CodespaceRoot      CodespaceType = "mintgate_base"
)

// Error is the failure result of an operation. An operation that
// returns a non-nil Error must leave no state change behind; the
// dispatcher discards the cache-wrapped store on any error result.
type Error interface {
	error

	Code() CodeType
	Codespace() CodespaceType
	Result() Result
}

// NewError builds an Error with the given codespace and code. The
// underlying cause keeps a stack trace for operator logs.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return sdkError{
		codespace: codespace,
		code:      code,
		cause:     errors.Errorf(format, args...),
	}
}

// WrapError attaches a codespace and code to a collaborator error,
// surfacing it verbatim to the caller.
func WrapError(codespace CodespaceType, code CodeType, cause error) Error {
	return sdkError{
		codespace: codespace,
		code:      code,
		cause:     errors.WithStack(cause),
	}
}

type sdkError struct {
	codespace CodespaceType
	code      CodeType
	cause     error
}

func (e sdkError) Error() string {
	return fmt.Sprintf("%s(%d): %s", e.codespace, e.code, e.cause.Error())
}

func (e sdkError) Code() CodeType            { return e.code }
func (e sdkError) Codespace() CodespaceType  { return e.codespace }

func (e sdkError) Result() Result {
	return Result{
		Code:      e.code,
		Codespace: e.codespace,
		Log:       e.Error(),
	}
}

func ErrInternal(msg string) Error {
	return NewError(CodespaceRoot, CodeInternal, msg)
}

func ErrUnknownRequest(msg string) Error {
	return NewError(CodespaceRoot, CodeUnknownRequest, msg)
}

func ErrUnauthorized(msg string) Error {
	return NewError(CodespaceRoot, CodeUnauthorized, msg)
}

func ErrInvalidAddress(msg string) Error {
	return NewError(CodespaceRoot, CodeInvalidAddress, msg)
}

func ErrInvalidTx(msg string) Error {
	return NewError(CodespaceRoot, CodeInvalidTx, msg)
}

func ErrInvalidAmount(msg string) Error {
	return NewError(CodespaceRoot, CodeInvalidAmount, msg)
}

func ErrUnsupportedToken(msg string) Error {
	return NewError(CodespaceRoot, CodeUnsupportedToken, msg)
}

func ErrSymbolAlreadyExists(msg string) Error {
	return NewError(CodespaceRoot, CodeSymbolAlreadyExists, msg)
}

func ErrInsufficientCoins(msg string) Error {
	return NewError(CodespaceRoot, CodeInsufficientCoins, msg)
}
