package components

import (
	"doctors-portal/internal/handler"
	"doctors-portal/internal/handler/api"
	"doctors-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		api.NewDoctorHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
