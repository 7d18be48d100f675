package delivery

import (
	"net/http"

	authdomain "dda-backend/internal/auth/domain"
	authdto "dda-backend/internal/auth/dto"
	"dda-backend/internal/auth/usecase"
	"dda-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// authorizeUserIsMe is the only access-control rule: a user may only touch
// their own profile.
func authorizeUserIsMe(targetUserID string, requester *authdomain.User) error {
	if requester == nil {
		return apperror.Unauthenticated()
	}
	if requester.ID != targetUserID {
		return apperror.Unauthorized("User", targetUserID)
	}
	return nil
}

// GetProfile handles GET /v1/:userId.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")
	if err := authorizeUserIsMe(userID, UserFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /v1/:userId.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")
	if err := authorizeUserIsMe(userID, UserFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	var update authdto.UserUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, apperror.Validation("request body is not a valid profile update"))
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
