package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/pkg/response"
	"github.com/linskybing/civictrack/pkg/utils"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type TokenResponse struct {
	Token string    `json:"access_token"`
	Type  string    `json:"token_type"`
	User  user.User `json:"user"`
}

// Signup godoc
// @Summary Citizen registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignupInput true "Account details"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	usr, token, err := h.svc.Signup(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, TokenResponse{Token: token, Type: "bearer", User: usr})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token, Type: "bearer", User: usr})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} user.User
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	usr, err := h.svc.GetUser(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateRole godoc
// @Summary Change a user's role (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "New role"
// @Success 200 {object} user.User
// @Router /api/users/{id}/role [put]
func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	usr, err := h.svc.UpdateRole(id, input.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
