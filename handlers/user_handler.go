package handlers

import (
	"strconv"

	"testblog/helper"
	"testblog/models"
	"testblog/services"

	"github.com/gin-gonic/gin"
	validator "gopkg.in/go-playground/validator.v9"
)

// UserHandler covers the admin-only account management surface.
type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: httpHelper}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load users", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Users loaded", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	roles, err := h.userService.ListRoles(user.ID)
	if err == nil {
		user.Roles = roles
	}

	h.Helper.SendSuccess(c, "User loaded", user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.ValidateStruct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, verrs)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if !h.userService.CreateUser(&user, req.Password) {
		h.Helper.SendBadRequest(c, "Failed to create user", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "User created", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.ValidateStruct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, verrs)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	user.Email = req.Email
	if !h.userService.UpdateUser(user) {
		h.Helper.SendBadRequest(c, "Failed to update user", h.Helper.EmptyJsonMap())
		return
	}

	if req.IsActive != nil && *req.IsActive != user.IsActive {
		if !h.userService.SetUserActive(user.ID, *req.IsActive) {
			h.Helper.SendBadRequest(c, "Failed to change account status", h.Helper.EmptyJsonMap())
			return
		}
	}

	h.Helper.SendSuccess(c, "User updated", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if _, err := h.userService.GetUserByID(uint(id)); err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	// A false here means the built-in admin account, which stays.
	if !h.userService.DeleteUser(uint(id)) {
		h.Helper.SendBadRequest(c, "User cannot be deleted", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) SetActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
			return
		}

		if _, err := h.userService.GetUserByID(uint(id)); err != nil {
			h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
			return
		}

		if !h.userService.SetUserActive(uint(id), active) {
			h.Helper.SendBadRequest(c, "Account status cannot be changed", h.Helper.EmptyJsonMap())
			return
		}

		h.Helper.SendSuccess(c, "Account status updated", h.Helper.EmptyJsonMap())
	}
}

func (h *UserHandler) GetUserRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if _, err := h.userService.GetUserByID(uint(id)); err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	roles, err := h.userService.ListRoles(uint(id))
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load roles", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Roles loaded", roles)
}

func (h *UserHandler) AssignRole(c *gin.Context) {
	id, role, ok := h.bindRoleRequest(c)
	if !ok {
		return
	}

	if !h.userService.AssignRole(id, role) {
		h.Helper.SendBadRequest(c, "Role already assigned or user missing", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Role assigned", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) RevokeRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	role, ok := models.ParseRoleName(c.Param("role"))
	if !ok {
		h.Helper.SendBadRequest(c, "Unknown role", h.Helper.EmptyJsonMap())
		return
	}

	if !h.userService.RevokeRole(uint(id), role) {
		h.Helper.SendBadRequest(c, "Role not assigned", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Role revoked", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) bindRoleRequest(c *gin.Context) (uint, models.RoleName, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return 0, "", false
	}

	var req models.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return 0, "", false
	}

	role, ok := models.ParseRoleName(req.Role)
	if !ok {
		h.Helper.SendBadRequest(c, "Unknown role", h.Helper.EmptyJsonMap())
		return 0, "", false
	}

	return uint(id), role, true
}
