package board

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Handler interface {
	GetBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	CreateBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
	AddMember(c *gin.Context)
	RemoveMember(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List boards
// @Description Boards the caller owns or is a member of
// @Tags Board
// @Produce json
// @Success 200 {object} BoardListResponse
// @Router /api/boards [get]
func (h *handler) GetBoards(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boards, err := h.service.GetForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, BoardListResponse{Boards: boards})
}

// @Summary Get board
// @Tags Board
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} Board
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [get]
func (h *handler) GetBoard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	board, err := h.service.GetByID(userID, boardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "board not accessible"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Create board
// @Tags Board
// @Accept json
// @Produce json
// @Param body body CreateBoardRequest true "Board data"
// @Success 201 {object} Board
// @Router /api/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	board, err := h.service.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create board"})
		return
	}
	c.JSON(http.StatusCreated, board)
}

// @Summary Update board
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board ID"
// @Param body body UpdateBoardRequest true "Fields to update"
// @Success 200 {object} Board
// @Router /api/boards/{id} [patch]
func (h *handler) UpdateBoard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	board, err := h.service.Update(userID, boardID, req)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to update board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Delete board
// @Tags Board
// @Param id path int true "Board ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Router /api/boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	if err := h.service.Delete(userID, boardID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete board"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add board member
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board ID"
// @Param body body AddMemberRequest true "User to add"
// @Success 200 {object} Board
// @Failure 409 {object} ErrorResponse
// @Router /api/boards/{id}/members [post]
func (h *handler) AddMember(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	board, err := h.service.AddMember(userID, boardID, req.UserID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to add member"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Remove board member
// @Tags Board
// @Param id path int true "Board ID"
// @Param userID path int true "User ID"
// @Success 204
// @Router /api/boards/{id}/members/{userID} [delete]
func (h *handler) RemoveMember(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	boardID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}
	memberID, err := parseID(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.service.RemoveMember(userID, boardID, memberID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to remove member"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
