package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/internal/auth"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/models"
	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

type AuthController struct {
	userService    services.UserService
	companyService services.CompanyService
	sessions       *auth.SessionStore
}

func InitAuthController(userService services.UserService, companyService services.CompanyService, sessions *auth.SessionStore) *AuthController {
	return &AuthController{
		userService:    userService,
		companyService: companyService,
		sessions:       sessions,
	}
}

// Login handles POST /auth. A successful login opens a server-side session
// keyed by the issued token; the company id rides on the session so the
// client never has to send it.
func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var authReq models.UserAuthRequest
		if !BindJSONAndValidate(c, &authReq) {
			return
		}

		user, err := ac.userService.Authenticate(ctx, authReq, c.ClientIP())
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		token, expiresAt, err := auth.GenerateJWT(user.ID.Hex(), user.Email, user.ForceChangePassword)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		companyId := ""
		if company, err := ac.companyService.DefaultCompany(ctx); err == nil {
			companyId = company.ID.Hex()
		}

		session := auth.AdminSession{
			UserId:              user.ID.Hex(),
			Username:            user.Email,
			CompanyId:           companyId,
			ForceChangePassword: user.ForceChangePassword,
		}
		if err := ac.sessions.Init(ctx, token, session); err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "login successful", gin.H{
			"token":               token,
			"expiresAt":           expiresAt,
			"forceChangePassword": user.ForceChangePassword,
			"user":                user,
		})
	}
}

// Logout handles POST /auth/logout. The token is blacklisted for its
// remaining lifetime and the session dropped.
func (ac *AuthController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		token := middleware.CurrentToken(c)
		if err := auth.InvalidateToken(util.REDIS, token); err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}
		if err := ac.sessions.Clear(ctx, token); err != nil {
			util.LogError("failed to clear session", err)
		}

		util.HandleSuccess(c, http.StatusOK, "logout successful", nil)
	}
}

// CurrentUser handles GET /auth/me.
func (ac *AuthController) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session := middleware.CurrentSession(c)
		userId, err := primitive.ObjectIDFromHex(session.UserId)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		user, err := ac.userService.GetUserByID(ctx, userId)
		if err != nil {
			util.HandleFailure(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", user)
	}
}

// ChangePassword handles PUT /auth/password. This route stays reachable for
// users still under the force-change gate; a successful change lifts it.
func (ac *AuthController) ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.PasswordChangeRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		session := middleware.CurrentSession(c)
		userId, err := primitive.ObjectIDFromHex(session.UserId)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		if err := ac.userService.ChangePassword(ctx, userId, req); err != nil {
			util.HandleFailure(c, err)
			return
		}

		if err := ac.sessions.ClearForceChangePassword(ctx, middleware.CurrentToken(c)); err != nil {
			util.LogError("failed to update session after password change", err)
		}

		util.HandleSuccess(c, http.StatusOK, "password changed", nil)
	}
}
