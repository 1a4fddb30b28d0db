package components

import (
	"booking-api/internal/handler"
	"booking-api/internal/handler/api"
	"booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		middleware.NewLoginRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
