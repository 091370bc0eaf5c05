// File: internal/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 錯誤分類，對應 HTTP 狀態碼
type Kind string

const (
	KindValidation   Kind = "ValidationError"
	KindNotFound     Kind = "NotFoundError"
	KindDuplicate    Kind = "DuplicateResourceError"
	KindInternal     Kind = "InternalError"
	KindUnauthorized Kind = "UnauthorizedError"
	KindForbidden    Kind = "ForbiddenError"
	KindRateLimited  Kind = "RateLimitedError"
)

// Error carries a Kind, a message that is safe to show to clients and an
// optional underlying cause that is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode 回傳對應的 HTTP 狀態碼
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Response 全域錯誤響應模型
// swagger:model apperror.Response
type Response struct {
	Error string `json:"error" example:"Car with ID 5 not found."`
	Type  string `json:"type" example:"NotFoundError"`
}

// Response builds the wire body. The wrapped cause is never included.
func (e *Error) Response() Response {
	return Response{Error: e.Message, Type: string(e.Kind)}
}

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, nil, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, nil, format, args...)
}

func Duplicate(format string, args ...any) *Error {
	return newError(KindDuplicate, nil, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(KindUnauthorized, nil, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, nil, format, args...)
}

func RateLimited(format string, args ...any) *Error {
	return newError(KindRateLimited, nil, format, args...)
}

// Internal wraps a store or unexpected failure.
func Internal(err error, format string, args ...any) *Error {
	return newError(KindInternal, err, format, args...)
}

// From 將任意錯誤轉成 *Error；非 *Error 一律視為 InternalError
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err, "an unexpected error occurred")
}

// KindOf returns the Kind of err, or "" when err is nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return From(err).Kind
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsDuplicate(err error) bool { return KindOf(err) == KindDuplicate }

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
