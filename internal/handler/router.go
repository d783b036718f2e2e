package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitclass-server/internal/handler/api"
	"fitclass-server/internal/handler/middleware"
	"fitclass-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, classHandler *api.ClassHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, classHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, classHandler *api.ClassHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		classes := apiGroup.Group("/classes")
		{
			addRoutes(classes, []route{
				{Method: http.MethodPost, Path: "", Handler: classHandler.CreateClass},
				{Method: http.MethodGet, Path: "", Handler: classHandler.ListActiveClasses},
				{Method: http.MethodGet, Path: "/:id", Handler: classHandler.GetClass},
				{Method: http.MethodDelete, Path: "/:id", Handler: classHandler.DeleteClass},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: classHandler.BookClass},
				{Method: http.MethodDelete, Path: "/:id/bookings", Handler: classHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/waitlist", Handler: classHandler.JoinWaitlist},
				{Method: http.MethodPost, Path: "/:id/finish", Handler: classHandler.FinishClass},
				{Method: http.MethodGet, Path: "/:id/results", Handler: classHandler.ListClassResults},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/users/:id/classes", Handler: classHandler.ListClassesByUser},
			{Method: http.MethodGet, Path: "/instructors/:id/classes", Handler: classHandler.ListClassesByInstructor},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
