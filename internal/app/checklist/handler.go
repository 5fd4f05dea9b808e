package checklist

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
	DeleteChecklist(c *gin.Context)
	CreateItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	ToggleItem(c *gin.Context)
	DeleteItem(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create checklist on card
// @Tags Checklist
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body CreateChecklistRequest true "Checklist data"
// @Success 201 {object} Checklist
// @Router /api/cards/{id}/checklists [post]
func (h *handler) CreateForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	checklist, err := h.service.Create(userID, cardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create checklist"})
		return
	}
	c.JSON(http.StatusCreated, checklist)
}

// @Summary Get card checklists
// @Tags Checklist
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} Checklist
// @Router /api/cards/{id}/checklists [get]
func (h *handler) GetForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	checklists, err := h.service.GetByCard(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch checklists"})
		return
	}
	c.JSON(http.StatusOK, checklists)
}

// @Summary Delete checklist
// @Tags Checklist
// @Param id path int true "Checklist ID"
// @Success 204
// @Router /api/checklists/{id} [delete]
func (h *handler) DeleteChecklist(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	checklistID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid checklist id"})
		return
	}

	if err := h.service.Delete(userID, checklistID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete checklist"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add checklist item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param id path int true "Checklist ID"
// @Param body body CreateItemRequest true "Item data"
// @Success 201 {object} ChecklistItem
// @Router /api/checklists/{id}/items [post]
func (h *handler) CreateItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	checklistID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid checklist id"})
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.service.AddItem(userID, checklistID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create checklist item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Update checklist item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body UpdateItemRequest true "Fields to update"
// @Success 200 {object} ChecklistItem
// @Router /api/checklist-items/{id} [patch]
func (h *handler) UpdateItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	itemID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.service.UpdateItem(userID, itemID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update checklist item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Toggle checklist item
// @Tags Checklist
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ChecklistItem
// @Router /api/checklist-items/{id}/toggle [patch]
func (h *handler) ToggleItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	itemID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return
	}

	item, err := h.service.ToggleItem(userID, itemID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to toggle checklist item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete checklist item
// @Tags Checklist
// @Param id path int true "Item ID"
// @Success 204
// @Router /api/checklist-items/{id} [delete]
func (h *handler) DeleteItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	itemID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return
	}

	if err := h.service.DeleteItem(userID, itemID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete checklist item"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
