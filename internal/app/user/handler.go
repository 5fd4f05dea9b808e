package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
)

type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetAllUsers(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary Register
// @Description Create an account and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.service.Register(req)
	if err != nil {
		h.logger.Warnw("Register failed", "username", req.Username, "error", err)
		msg := "failed to register"
		if errors.Is(err, apperrors.ErrConflict) {
			msg = "username or email already taken"
		}
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user, Access: token})
}

// @Summary Login
// @Description Exchange email and password for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.service.Login(req)
	if err != nil {
		h.logger.Warnw("Login failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user, Access: token})
}

// @Summary List users
// @Description Get every registered user, for member pickers
// @Tags User
// @Produce json
// @Success 200 {array} User
// @Router /api/users [get]
func (h *handler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
