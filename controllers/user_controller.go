package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/qaserver/services"
	"github.com/cppla/qaserver/utils"
)

// UserController serves the user endpoints.
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new UserController instance.
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// CreateUser handles POST /users.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req services.UserCreate
	if err := bindJSON(ctx, &req); err != nil {
		utils.Fail(ctx, err)
		return
	}
	user, err := u.users.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Created(ctx, user)
}

// ListUsers handles GET /users.
func (u *UserController) ListUsers(ctx *gin.Context) {
	offset, limit, err := parsePagination(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	page, err := u.users.GetAllUsers(ctx.Request.Context(), offset, limit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, page)
}

// GetUser handles GET /users/:user_id.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, err := parseUserID(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	user, err := u.users.GetUser(ctx.Request.Context(), id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, user)
}

// DeleteUser handles DELETE /users/:user_id.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, err := parseUserID(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	if err := u.users.DeleteUser(ctx.Request.Context(), id); err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.NoContent(ctx)
}
