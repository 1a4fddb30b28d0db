package handler

import (
	"net/http"

	"booking-api/internal/handler/api"
	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Catalog *api.CatalogHandler
}

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, catalog *api.CatalogHandler) Handlers {
	return Handlers{Auth: auth, Booking: booking, Catalog: catalog}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.LoginRateLimiter) error {
	if err := setupMiddleware(engine, cfg, logger); err != nil {
		return err
	}
	setupRoutes(engine, h, authMiddleware, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) error {
	// ClientIP feeds the login limiter, so forwarding headers count only from known proxies
	if err := middleware.TrustProxies(engine, cfg.Server.TrustedProxies); err != nil {
		return err
	}
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
	return nil
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.LoginRateLimiter) {
	engine.GET("/", h.Catalog.Health)
	engine.GET("/health", h.Catalog.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/public", Handler: h.Booking.PublicLookup},
			})

			protected := bookings.Group("")
			protected.Use(authMiddleware.RequireAdmin())
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
