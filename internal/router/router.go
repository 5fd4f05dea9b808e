package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/attachment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/checklist"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/comment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/health"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/label"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/gateways/websocket"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
)

type Router struct {
	Engine *gin.Engine
	tokens middleware.TokenVerifier
	authed *gin.RouterGroup
}

func NewRouter(logger *zap.Logger, tokens middleware.TokenVerifier) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	return &Router{
		Engine: engine,
		tokens: tokens,
		authed: engine.Group("/api", middleware.AuthMiddleware(tokens)),
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterAuthRoutes(handler user.Handler) {
	user.RegisterAuthRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterListRoutes(handler list.Handler) {
	list.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterCardRoutes(handler card.Handler) {
	card.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterLabelRoutes(handler label.Handler) {
	label.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterChecklistRoutes(handler checklist.Handler) {
	checklist.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterAttachmentRoutes(handler attachment.Handler) {
	attachment.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine.Group("", middleware.AuthMiddleware(r.tokens)), hub)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
