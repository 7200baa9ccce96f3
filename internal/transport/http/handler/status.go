package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"statusboard/internal/app"
	"statusboard/internal/model"
	"statusboard/internal/transport/http/middleware"
	"statusboard/internal/transport/http/response"
)

type StatusHandler struct {
	statusService *app.StatusService
}

type StatusContentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewStatusHandler(statusService *app.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

func (h *StatusHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req StatusContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), app.CreateStatusInput{
		ActorID: userID,
		Content: req.Content,
	})
	if err != nil {
		if writeContentError(c, err) {
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error creating status")
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":   "Status created successfully",
		"newStatus": status,
	})
}

func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.statusService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Error fetching statuses")
		return
	}
	response.JSON(c, http.StatusOK, statuses)
}

func (h *StatusHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req StatusContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	status, err := h.statusService.Update(c.Request.Context(), app.UpdateStatusInput{
		ActorID:  userID,
		StatusID: c.Param("id"),
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrStatusNotFound):
			response.Error(c, http.StatusNotFound, "Status not found")
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You do not have permission to edit this status")
		case errors.Is(err, app.ErrConflict):
			response.Error(c, http.StatusConflict, err.Error())
		case writeContentError(c, err):
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error updating status")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"status":  status,
	})
}

func (h *StatusHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, app.ErrStatusNotFound):
			response.Error(c, http.StatusNotFound, "Status not found")
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You do not have permission to delete this status")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error deleting status")
		}
		return
	}

	response.Message(c, http.StatusOK, "Status deleted successfully")
}

func (h *StatusHandler) ToggleLike(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.statusService.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrStatusNotFound):
			response.Error(c, http.StatusNotFound, "Status not found")
		case errors.Is(err, app.ErrConflict):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Error toggling like")
		}
		return
	}

	message := "Status liked"
	if result.Result == model.LikeResultUnliked {
		message = "Status unliked"
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message":    message,
		"likesCount": result.LikesCount,
		"likes":      result.Likes,
	})
}

// writeContentError answers validation failures on status content and
// reports whether it did.
func writeContentError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, app.ErrStatusContentEmpty), errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "content is required")
	case errors.Is(err, app.ErrStatusContentTooLong):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		return false
	}
	return true
}

func getUserIDFromContext(c *gin.Context) (string, bool) {
	return middleware.UserID(c)
}
