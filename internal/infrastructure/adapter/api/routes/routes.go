package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Pool    *handler.PoolHandler
	Session *handler.SessionHandler
	User    *handler.UserHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, staticDir string) {
	router.SetHTMLTemplate(handler.IndexTemplate)

	router.GET("/", h.Pool.Index)
	router.GET("/healthz", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/pool", h.Pool.GetPool)
		api.GET("/sets", h.Pool.GetSets)

		api.GET("/session/:n", h.Session.GetSession)
		api.POST("/session/:n/complete", h.Session.CompleteSession)
		api.GET("/history", h.Session.GetHistory)

		api.POST("/register", h.User.Register)
		api.POST("/login", h.User.Login)
	}

	// Frontend assets are served from the root but never shadow a registered route
	if staticDir != "" {
		files := http.FileServer(http.Dir(staticDir))
		router.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{OK: false})
				return
			}
			files.ServeHTTP(c.Writer, c.Request)
		})
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
