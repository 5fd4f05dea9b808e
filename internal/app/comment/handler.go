package comment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Handler interface {
	CreateForCard(c *gin.Context)
	GetForCard(c *gin.Context)
	UpdateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Add comment to card
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body CreateCommentRequest true "Comment data"
// @Success 201 {object} Comment
// @Router /api/cards/{id}/comments [post]
func (h *handler) CreateForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.service.Create(userID, cardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// @Summary Get card comments
// @Tags Comment
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} Comment
// @Router /api/cards/{id}/comments [get]
func (h *handler) GetForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	comments, err := h.service.GetByCard(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// @Summary Update comment
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param body body UpdateCommentRequest true "New body"
// @Success 200 {object} Comment
// @Router /api/comments/{id} [patch]
func (h *handler) UpdateComment(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	commentID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.service.Update(userID, commentID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// @Summary Delete comment
// @Tags Comment
// @Param id path int true "Comment ID"
// @Success 204
// @Router /api/comments/{id} [delete]
func (h *handler) DeleteComment(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	commentID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
		return
	}

	if err := h.service.Delete(userID, commentID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete comment"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
