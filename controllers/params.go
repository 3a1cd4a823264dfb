package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/repository"
	"github.com/cppla/qaserver/services"
)

// parseID reads a positive integer path parameter.
func parseID(ctx *gin.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errorz.Validation("%s must be a positive integer, got %q", name, raw)
	}
	return id, nil
}

func parseUserID(ctx *gin.Context) (uuid.UUID, error) {
	return services.ParseUserID(ctx.Param("user_id"))
}

// parsePagination reads offset and limit. Absent values take the defaults; out-of-range values
// are left for the service to clamp; non-integers are rejected.
func parsePagination(ctx *gin.Context) (offset, limit int, err error) {
	offset, err = queryInt(ctx, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(ctx, "limit", repository.DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return offset, limit, nil
}

func queryInt(ctx *gin.Context, key string, def int) (int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errorz.Validation("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// bindJSON decodes the body into dst. Any decode or validation failure becomes a Validation error.
func bindJSON(ctx *gin.Context, dst any) error {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		return errorz.Validation("%s", bindingMessage(err))
	}
	return nil
}

func bindingMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	return "invalid request body: " + err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "uuid4":
		return fmt.Sprintf("%s must be a version 4 UUID", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
