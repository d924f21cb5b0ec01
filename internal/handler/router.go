package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tickettock/internal/handler/api"
	"tickettock/internal/handler/middleware"
	"tickettock/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Admin       *api.AdminHandler
	Seat        *api.SeatHandler
}

func NewHandlers(reservation *api.ReservationHandler, admin *api.AdminHandler, seat *api.SeatHandler) Handlers {
	return Handlers{Reservation: reservation, Admin: admin, Seat: seat}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	seats := engine.Group("/api/v1/seats")
	{
		addRoutes(seats, []route{
			{Method: http.MethodPost, Path: "/reservation/fcfs", Handler: h.Reservation.ReserveFCFS},
			{Method: http.MethodPost, Path: "/reset", Handler: h.Admin.Reset},
			{Method: http.MethodGet, Path: "", Handler: h.Seat.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Seat.Get},
			{Method: http.MethodPost, Path: "/:id/reserve", Handler: h.Seat.Reserve},
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
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
