package api

import (
	"dda-backend/internal/auth/delivery"
	"dda-backend/internal/auth/usecase"
	"dda-backend/pkg/config"
	"dda-backend/pkg/metric"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *gin.Engine
}

func NewHandler(authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase, cfg *config.Config, collector *metric.Collector) *Handler {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(delivery.CORS(cfg.AllowedOrigins))
	r.Use(collector.Middleware())
	r.Use(delivery.AuthMiddleware(authUsecase))
	r.Use(delivery.RequestLogger())

	SetupRoutes(r, authUsecase, userUsecase, collector)

	return &Handler{engine: r}
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
