package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 携带 HTTP 状态码的业务错误，处理器据此产出响应.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func newAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func badRequest(message string) *AppError {
	return newAppError(http.StatusBadRequest, message, nil)
}

func notFound(message string) *AppError {
	return newAppError(http.StatusNotFound, message, nil)
}

func forbidden(message string) *AppError {
	return newAppError(http.StatusForbidden, message, nil)
}

func unauthorized(message string) *AppError {
	return newAppError(http.StatusUnauthorized, message, nil)
}

func conflict(message string) *AppError {
	return newAppError(http.StatusConflict, message, nil)
}

// StatusOf 提取错误对应的 HTTP 状态码，未知错误归为 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	return http.StatusInternalServerError
}

// MessageOf 提取可安全返回给客户端的错误信息. 非业务错误不透传
// 内部细节，统一返回通用描述.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return "internal server error"
}
