package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/qaserver/errorz"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var internalError = ErrorResponse{Code: errorz.KindInternal.Code(), Message: "internal server error"}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, data)
}

// Success returns 200 with data as the body.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, data)
}

// Created returns 201 with data as the body.
func Created(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusCreated, data)
}

// NoContent returns 204 with an empty body.
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: message})
}

// Fail maps a domain error onto its status and body. Anything unclassified is logged and
// answered with a generic 500 so storage details never reach the client.
func Fail(ctx *gin.Context, err error) {
	var de *errorz.Error
	if errors.As(err, &de) && de.Kind != errorz.KindInternal {
		Error(ctx, de.Kind.Status(), de.Kind.Code(), de.Message)
		return
	}
	Logger.Error("request failed",
		zap.Error(err),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.String(RequestIDKey, ctx.GetString(RequestIDKey)),
	)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
}
