package label

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
	UpdateLabel(c *gin.Context)
	DeleteLabel(c *gin.Context)
	DeleteFromCard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Add label to card
// @Tags Label
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body CreateLabelRequest true "Label data"
// @Success 201 {object} Label
// @Router /api/cards/{id}/labels [post]
func (h *handler) CreateForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	label, err := h.service.Create(userID, cardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create label"})
		return
	}
	c.JSON(http.StatusCreated, label)
}

// @Summary Get card labels
// @Tags Label
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} Label
// @Router /api/cards/{id}/labels [get]
func (h *handler) GetForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	labels, err := h.service.GetByCard(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch labels"})
		return
	}
	c.JSON(http.StatusOK, labels)
}

// @Summary Update label
// @Tags Label
// @Accept json
// @Produce json
// @Param id path int true "Label ID"
// @Param body body UpdateLabelRequest true "Fields to update"
// @Success 200 {object} Label
// @Router /api/labels/{id} [patch]
func (h *handler) UpdateLabel(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	labelID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid label id"})
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	label, err := h.service.Update(userID, labelID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update label"})
		return
	}
	c.JSON(http.StatusOK, label)
}

// @Summary Delete label
// @Tags Label
// @Param id path int true "Label ID"
// @Success 204
// @Router /api/labels/{id} [delete]
func (h *handler) DeleteLabel(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	labelID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid label id"})
		return
	}

	if err := h.service.Delete(userID, labelID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete label"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove label from card
// @Tags Label
// @Param id path int true "Card ID"
// @Param labelID path int true "Label ID"
// @Success 204
// @Router /api/cards/{id}/labels/{labelID} [delete]
func (h *handler) DeleteFromCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}
	labelID, err := parseID(c, "labelID")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid label id"})
		return
	}

	if err := h.service.DeleteFromCard(userID, cardID, labelID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to remove label"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
