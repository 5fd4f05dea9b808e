package attachment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Handler interface {
	UploadForCard(c *gin.Context)
	GetForCard(c *gin.Context)
	DeleteAttachment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Upload attachment to card
// @Tags Attachment
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Card ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} Attachment
// @Router /api/cards/{id}/attachments [post]
func (h *handler) UploadForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}

	attachment, err := h.service.Upload(c.Request.Context(), userID, cardID, fileHeader)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to upload attachment"})
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// @Summary Get card attachments
// @Tags Attachment
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {array} Attachment
// @Router /api/cards/{id}/attachments [get]
func (h *handler) GetForCard(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	cardID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	attachments, err := h.service.GetByCard(userID, cardID)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to fetch attachments"})
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// @Summary Delete attachment
// @Tags Attachment
// @Param id path int true "Attachment ID"
// @Success 204
// @Router /api/attachments/{id} [delete]
func (h *handler) DeleteAttachment(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	attachmentID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attachment id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, attachmentID); err != nil {
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: "failed to delete attachment"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
