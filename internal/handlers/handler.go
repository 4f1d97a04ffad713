package handlers

import (
	"microfeed/internal/logger"
	"microfeed/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	hub      *feedHub
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, hub: newFeedHub()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints: account creation and session establishment
	h.registerAuthRoutes(router)

	// Session-guarded endpoints
	h.registerGuardedRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.getRegister)
	r.POST("/register", h.postRegister)
	r.GET("/login", h.getLogin)
	r.POST("/login", h.postLogin)
	// Logout has no harmful effect when called unauthenticated, so it is
	// not behind the session guard.
	r.GET("/logout", h.logout)
}

func (h *Handler) registerGuardedRoutes(r *gin.Engine) {
	guarded := r.Group("/", h.sessionMiddleware)
	{
		guarded.GET("", h.getFeed)
		guarded.POST("", h.postFeed)

		profile := guarded.Group("/profile")
		{
			profile.GET("/:id", h.viewProfile)
			profile.GET("/:id/edit", h.getEditProfile)
			profile.POST("/:id/edit", h.postEditProfile)
			profile.POST("/:id/delete", h.deleteAccount)
		}

		// Live feed stream, served over an HTTP upgrade on the same port.
		guarded.GET("/ws/feed", h.wsFeed)
	}
}
