package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"statusboard/internal/app"
	"statusboard/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type UpdateDescriptionRequest struct {
	Description *string `json:"description" binding:"required"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error fetching users")
		return
	}
	response.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	profile, err := h.userService.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error fetching user data")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user":     profile.User,
		"statuses": profile.Statuses,
	})
}

func (h *UserHandler) UpdateDescription(c *gin.Context) {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "description is required")
		return
	}

	user, err := h.userService.UpdateDescription(c.Request.Context(), app.UpdateDescriptionInput{
		ActorID:     actorID,
		UserID:      c.Param("id"),
		Description: *req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You do not have permission to edit this profile")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error updating description")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Description updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) Activity(c *gin.Context) {
	activities, err := h.userService.Activity(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error fetching activity")
		}
		return
	}
	response.JSON(c, http.StatusOK, activities)
}
