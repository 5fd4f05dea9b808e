package card

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Handler interface {
	GetCards(c *gin.Context)
	GetCard(c *gin.Context)
	CreateCard(c *gin.Context)
	UpdateCard(c *gin.Context)
	DeleteCard(c *gin.Context)
	GetMembers(c *gin.Context)
	AddMember(c *gin.Context)
	AddMembersBulk(c *gin.Context)
	RemoveMember(c *gin.Context)
	SetDates(c *gin.Context)
	RemoveDates(c *gin.Context)
	SetLocation(c *gin.Context)
	RemoveLocation(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary Get cards of a list
// @Tags Card
// @Produce json
// @Param list_id query int true "List ID"
// @Success 200 {object} CardListResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/cards [get]
func (h *handler) GetCards(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	listID, err := strconv.ParseUint(c.Query("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "list_id is required"})
		return
	}

	cards, err := h.service.GetByList(c.Request.Context(), userID, listID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch cards"})
		return
	}
	c.JSON(http.StatusOK, CardListResponse{Cards: cards})
}

// @Summary Get card
// @Tags Card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} Card
// @Failure 404 {object} ErrorResponse
// @Router /api/cards/{id} [get]
func (h *handler) GetCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	card, err := h.service.Get(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "card not accessible"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Create card
// @Tags Card
// @Accept json
// @Produce json
// @Param body body CreateCardRequest true "Card data"
// @Success 201 {object} Card
// @Failure 403 {object} ErrorResponse
// @Router /api/cards [post]
func (h *handler) CreateCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Warnw("CreateCard failed", "user_id", userID, "list_id", req.ListID, "error", err)
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to create card"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update card
// @Description Edit fields, reorder within the list, or move to another list
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body UpdateCardRequest true "Fields to update"
// @Success 200 {object} Card
// @Failure 403 {object} ErrorResponse
// @Router /api/cards/{id} [patch]
func (h *handler) UpdateCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, cardID, req)
	if err != nil {
		h.logger.Warnw("UpdateCard failed", "user_id", userID, "card_id", cardID, "error", err)
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update card"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete card
// @Tags Card
// @Param id path int true "Card ID"
// @Success 204
// @Router /api/cards/{id} [delete]
func (h *handler) DeleteCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, cardID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete card"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get card members
// @Tags Card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} CardMember
// @Router /api/cards/{id}/members [get]
func (h *handler) GetMembers(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	members, err := h.service.GetMembers(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Summary Assign member
// @Description Assign a board member to the card; repeat calls no-op
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body MemberRequest true "User to assign"
// @Success 200 {object} CardMember
// @Failure 400 {object} ErrorResponse
// @Router /api/cards/{id}/members [post]
func (h *handler) AddMember(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), userID, cardID, req.UserID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to assign member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Assign several members
// @Description Assign a batch of users; per-user failures are reported, not fatal
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body BulkMemberRequest true "Users to assign"
// @Success 200 {object} BulkMemberResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/cards/{id}/members/bulk [post]
func (h *handler) AddMembersBulk(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req BulkMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.AddMembersBulk(c.Request.Context(), userID, cardID, req.UserIDs)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to assign members"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Unassign member
// @Tags Card
// @Accept json
// @Param id path int true "Card ID"
// @Param body body MemberRequest true "User to unassign"
// @Success 204
// @Router /api/cards/{id}/members [delete]
func (h *handler) RemoveMember(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), userID, cardID, req.UserID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to unassign member"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set card dates
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body DatesRequest true "Start and due dates"
// @Success 200 {object} CardDate
// @Router /api/cards/{id}/dates [post]
func (h *handler) SetDates(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req DatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dates, err := h.service.SetDates(c.Request.Context(), userID, cardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to set dates"})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// @Summary Remove card dates
// @Tags Card
// @Param id path int true "Card ID"
// @Success 204
// @Router /api/cards/{id}/dates [delete]
func (h *handler) RemoveDates(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	if err := h.service.RemoveDates(c.Request.Context(), userID, cardID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to remove dates"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set card location
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body LocationRequest true "Location data"
// @Success 200 {object} CardLocation
// @Router /api/cards/{id}/location [post]
func (h *handler) SetLocation(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	loc, err := h.service.SetLocation(c.Request.Context(), userID, cardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to set location"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// @Summary Remove card location
// @Tags Card
// @Param id path int true "Card ID"
// @Success 204
// @Router /api/cards/{id}/location [delete]
func (h *handler) RemoveLocation(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseCardID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	if err := h.service.RemoveLocation(c.Request.Context(), userID, cardID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to remove location"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseCardID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
