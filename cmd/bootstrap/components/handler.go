package components

import (
	"fitclass-server/internal/handler"
	"fitclass-server/internal/handler/api"
	"fitclass-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClassHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
