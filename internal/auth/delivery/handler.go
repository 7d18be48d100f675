package delivery

import (
	"log/slog"
	"net/http"

	authdto "dda-backend/internal/auth/dto"
	"dda-backend/internal/auth/usecase"
	"dda-backend/pkg/apperror"
	"dda-backend/pkg/metric"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	collector   *metric.Collector
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, collector *metric.Collector) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		collector:   collector,
	}
}

// GoogleLogin handles POST /v1/glb/auth/google.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req authdto.GoogleTokenExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.collector.RecordLogin(apperror.CodeValidation)
		respondError(c, apperror.Validation("authorizationCode, codeVerifier and redirectUri are required"))
		return
	}

	session, err := h.authUsecase.LoginWithGoogle(c.Request.Context(), &req)
	if err != nil {
		h.collector.RecordLogin(apperror.From(err).Code)
		respondError(c, err)
		return
	}

	h.collector.RecordLogin("success")
	c.JSON(http.StatusCreated, authdto.NewSessionTokenResponse(session))
}

// respondError maps any error to its status and machine-readable code.
// Untyped errors surface as UnknownError with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.Code == apperror.CodeUnknown {
		slog.Error("request failed with outgoing exception",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{
		"errorCode":    appErr.Code,
		"errorMessage": appErr.Message,
	})
}
