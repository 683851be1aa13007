package router

import (
	"backend/internal/app/archive"
	"backend/internal/app/comment"
	"backend/internal/app/dashboard"
	"backend/internal/app/health"
	"backend/internal/app/kanban"
	"backend/internal/app/member"
	"backend/internal/app/post"
	"backend/internal/app/project"
	"backend/internal/app/quicklink"
	"backend/internal/app/schedule"
	"backend/internal/app/task"
	"backend/internal/gateways/websocket"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine

	public    *gin.RouterGroup
	protected *gin.RouterGroup
}

// NewRouter builds the engine with two /api groups: auth endpoints stay
// public, everything else sits behind the session middleware.
func NewRouter(logger *zap.Logger, resolver member.Resolver) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	return &Router{
		Engine:    engine,
		public:    engine.Group("/api"),
		protected: engine.Group("/api", member.RequireSession(resolver)),
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.public, handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub, resolver websocket.MemberResolver) {
	websocket.RegisterRoutes(r.Engine, hub, resolver)
}

func (r *Router) RegisterMemberRoutes(handler member.Handler) {
	member.RegisterAuthRoutes(r.public, handler)
	member.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterTaskRoutes(handler task.Handler) {
	task.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterKanbanRoutes(handler kanban.Handler) {
	kanban.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterScheduleRoutes(handler schedule.Handler) {
	schedule.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterProjectRoutes(handler project.Handler) {
	project.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterPostRoutes(handler post.Handler) {
	post.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterArchiveRoutes(handler archive.Handler) {
	archive.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterQuickLinkRoutes(handler quicklink.Handler) {
	quicklink.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterDashboardRoutes(handler dashboard.Handler) {
	dashboard.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
