package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with.
// Data is null on failure; Error is null on success and a (possibly empty) list on failure.
type APIResponse[T any] struct {
	Success bool     `json:"success"`
	Data    T        `json:"data"`
	Message string   `json:"message"`
	Error   []string `json:"error"`
}

// Success writes a success envelope with the given status (200 when zero).
func Success[T any](ctx *gin.Context, status int, message string, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// OK writes a 200 success envelope.
func OK[T any](ctx *gin.Context, message string, data T) {
	Success(ctx, http.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created[T any](ctx *gin.Context, message string, data T) {
	Success(ctx, http.StatusCreated, message, data)
}

// NoContent writes a 200 success envelope with null data.
// Deletions answer this way instead of 204 so clients always get an envelope.
func NoContent(ctx *gin.Context, message string) {
	Success[any](ctx, http.StatusOK, message, nil)
}

// Error writes a failure envelope. A nil errs is sent as an empty list.
func Error(ctx *gin.Context, status int, message string, errs []string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	if errs == nil {
		errs = []string{}
	}
	ctx.JSON(status, APIResponse[any]{
		Success: false,
		Data:    nil,
		Message: message,
		Error:   errs,
	})
}
