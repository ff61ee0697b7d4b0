package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarin-io/api/internal/helpers"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type UserController struct {
	userService services.UserService
}

func InitUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser handles POST /users. New accounts start under the
// force-change-password gate.
func (uc *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.CreateUserRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		userId, err := uc.userService.CreateUser(ctx, req)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "user created", gin.H{
			"userId": userId.Hex(),
		})
	}
}

// GetUser handles GET /users/:userid.
func (uc *UserController) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userId, ok := ParseObjectIDParam(c, "userid")
		if !ok {
			return
		}

		user, err := uc.userService.GetUserByID(ctx, userId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", user)
	}
}

// ListUsers handles GET /users.
func (uc *UserController) ListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		paginationArgs := helpers.GetPaginationArgs(c)
		users, count, err := uc.userService.ListUsers(ctx, paginationArgs)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		HandlePaginationAndResponse(c, users, count, paginationArgs, "success")
	}
}

// UpdateUser handles PUT /users/:userid.
func (uc *UserController) UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userId, ok := ParseObjectIDParam(c, "userid")
		if !ok {
			return
		}

		var req models.UpdateUserRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		if err := uc.userService.UpdateUser(ctx, userId, req); err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "user updated", nil)
	}
}

// DeleteUser handles DELETE /users/:userid.
func (uc *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userId, ok := ParseObjectIDParam(c, "userid")
		if !ok {
			return
		}

		if err := uc.userService.DeleteUser(ctx, userId); err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "user deleted", nil)
	}
}

// ListPermissions handles GET /permissions. The permission catalog backs
// the grant checkboxes on the user form.
func (uc *UserController) ListPermissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		permissions, err := uc.userService.ListPermissions(ctx)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", permissions)
	}
}
