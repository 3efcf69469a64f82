package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"doctors-portal/internal/handler/api"
	"doctors-portal/internal/handler/middleware"
	"doctors-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	bookingHandler *api.BookingHandler,
	userHandler *api.UserHandler,
	doctorHandler *api.DoctorHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, bookingHandler, userHandler, doctorHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	bookingHandler *api.BookingHandler,
	userHandler *api.UserHandler,
	doctorHandler *api.DoctorHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		treatments := apiGroup.Group("/treatments")
		{
			addRoutes(treatments, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListTreatmentNames},
				{Method: http.MethodGet, Path: "/available", Handler: catalogHandler.GetAvailability},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: catalogHandler.CreateTreatment,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()},
				},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.RequestBooking},
			})

			authed := bookings.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetPatientBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.ConfirmPayment},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPut, Path: "/:email", Handler: userHandler.SyncUser},
				{Method: http.MethodGet, Path: "/:email/admin", Handler: userHandler.CheckAdmin},
				{
					Method:  http.MethodGet,
					Path:    "",
					Handler: userHandler.ListUsers,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth()},
				},
				{
					Method:  http.MethodPut,
					Path:    "/:email/admin",
					Handler: userHandler.GrantAdmin,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()},
				},
			})
		}

		doctors := apiGroup.Group("/doctors")
		doctors.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(doctors, []route{
				{Method: http.MethodGet, Path: "", Handler: doctorHandler.ListDoctors},
				{Method: http.MethodPost, Path: "", Handler: doctorHandler.AddDoctor},
				{Method: http.MethodDelete, Path: "/:email", Handler: doctorHandler.RemoveDoctor},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intent", Handler: paymentHandler.CreatePaymentIntent},
			})
		}
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
