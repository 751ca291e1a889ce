package handlers

import (
	"testblog/config"
	"testblog/helper"
	"testblog/middleware"
	"testblog/models"
	"testblog/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, Helper: httpHelper}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.setSessionCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.setSessionCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(claims.UserID)
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	roles, err := h.userService.ListRoles(user.ID)
	if err == nil {
		user.Roles = roles
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if !h.userService.ChangePassword(claims.UserID, req.OldPassword, req.NewPassword) {
		h.Helper.SendBadRequest(c, "Current password is incorrect", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Password changed", h.Helper.EmptyJsonMap())
}

// The same signed token serves both surfaces: JSON clients read it from the
// body, the browser surface rides on the http-only cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(config.JWTExpiration.Seconds()), "/", "", false, true)
}
