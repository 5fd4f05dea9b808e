package list

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Handler interface {
	GetLists(c *gin.Context)
	CreateList(c *gin.Context)
	UpdateList(c *gin.Context)
	DeleteList(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get lists
// @Description Lists created by the caller, ascending by order
// @Tags List
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/lists [get]
func (h *handler) GetLists(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	lists, err := h.service.GetForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch lists"})
		return
	}
	c.JSON(http.StatusOK, ListResponse{Lists: lists})
}

// @Summary Create list
// @Tags List
// @Accept json
// @Produce json
// @Param body body CreateListRequest true "List data"
// @Success 201 {object} List
// @Failure 403 {object} ErrorResponse
// @Router /api/lists [post]
func (h *handler) CreateList(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create list"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update list
// @Description Rename a list or move it to a new position
// @Tags List
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Param body body UpdateListRequest true "Fields to update"
// @Success 200 {object} List
// @Failure 404 {object} ErrorResponse
// @Router /api/lists/{id} [patch]
func (h *handler) UpdateList(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, listID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update list"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete list
// @Description Delete a list and all of its cards
// @Tags List
// @Param id path int true "List ID"
// @Success 204
// @Router /api/lists/{id} [delete]
func (h *handler) DeleteList(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, listID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete list"})
		return
	}
	c.Status(http.StatusNoContent)
}
