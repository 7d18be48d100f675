package api

import (
	"net/http"

	"dda-backend/internal/auth/delivery"
	"dda-backend/internal/auth/usecase"
	"dda-backend/pkg/metric"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase, collector *metric.Collector) {
	authHandler := delivery.NewAuthHandler(authUsecase, collector)
	userHandler := delivery.NewUserHandler(userUsecase)

	// Health check (no auth required)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/glb/auth/google", authHandler.GoogleLogin)
		v1.GET("/:userId", userHandler.GetProfile)
		v1.PATCH("/:userId", userHandler.UpdateProfile)
	}
}
