package api

import (
	"errors"
	"net/http"

	reqdto "doctors-portal/internal/handler/dto/request"
	resdto "doctors-portal/internal/handler/dto/response"
	"doctors-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// @Summary List users
// @Description List all registered users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	usersRM, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRMs(usersRM))
}

// @Summary Sync user
// @Description Upsert a user record and issue an access token
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body reqdto.UpsertUserRequest true "User profile"
// @Success 200 {object} resdto.UpsertUserResponse
// @Failure 400 {object} map[string]string
// @Router /users/{email} [put]
func (h *UserHandler) SyncUser(c *gin.Context) {
	email := c.Param("email")

	var req reqdto.UpsertUserRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userRM, token, err := h.userUseCase.SyncUser(c.Request.Context(), email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address",
			})
		case errors.Is(err, usecase.ErrTokenGeneration):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to issue access token",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.UpsertUserResponse{
		Result: resdto.FromUserRM(userRM),
		Token:  token,
	})
}

// @Summary Check admin status
// @Description Report whether the given user holds the admin role
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} resdto.AdminStatusResponse
// @Router /users/{email}/admin [get]
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	admin, err := h.userUseCase.IsAdmin(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, &resdto.AdminStatusResponse{Admin: admin})
}

// @Summary Grant admin role
// @Description Promote an existing user to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{email}/admin [put]
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	email := c.Param("email")

	userRM, err := h.userUseCase.GrantAdmin(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRM(userRM))
}
