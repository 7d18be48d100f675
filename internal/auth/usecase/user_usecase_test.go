package usecase_test

import (
	"context"
	"testing"

	authdomain "dda-backend/internal/auth/domain"
	authdto "dda-backend/internal/auth/dto"
	"dda-backend/internal/auth/usecase"
	"dda-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func seedUser(t *testing.T, repo *memoryUserRepo, email string, phone *string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		Email:       email,
		FamilyName:  "Graham",
		GivenName:   "Austin",
		PhoneNumber: phone,
		Source:      authdomain.UserSourceGoogle,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetProfileReturnsNotFoundForUnknownUser(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)

	_, err := uc.GetProfile(context.Background(), "8dc289a9-28d4-4a00-a95a-0179371a9b2e")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.From(err).Code)
}

func TestUpdateProfileAppliesPartialUpdate(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)
	user := seedUser(t, users, "test@email.com", nil)

	updated, err := uc.UpdateProfile(context.Background(), user.ID, &authdto.UserUpdateRequest{
		GivenName:   strPtr("Amelia"),
		PhoneNumber: strPtr("+15551234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amelia", updated.GivenName)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "+15551234567", *updated.PhoneNumber)
	assert.Equal(t, "Graham", updated.FamilyName, "unset fields stay untouched")

	// The update is visible on a subsequent read.
	read, err := uc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amelia", read.GivenName)
}

func TestUpdateProfileRejectsEmailOwnedByAnotherUser(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)
	user := seedUser(t, users, "test@email.com", nil)
	seedUser(t, users, "taken@email.com", nil)

	_, err := uc.UpdateProfile(context.Background(), user.ID, &authdto.UserUpdateRequest{
		Email: strPtr("taken@email.com"),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.From(err).Code)
}

func TestUpdateProfileRejectsPhoneOwnedByAnotherUser(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)
	user := seedUser(t, users, "test@email.com", nil)
	seedUser(t, users, "other@email.com", strPtr("+15551234567"))

	_, err := uc.UpdateProfile(context.Background(), user.ID, &authdto.UserUpdateRequest{
		PhoneNumber: strPtr("+15551234567"),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.From(err).Code)
}

func TestUpdateProfileAllowsKeepingOwnEmailAndPhone(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)
	user := seedUser(t, users, "test@email.com", strPtr("+15551234567"))

	updated, err := uc.UpdateProfile(context.Background(), user.ID, &authdto.UserUpdateRequest{
		Email:       strPtr("test@email.com"),
		PhoneNumber: strPtr("+15551234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "test@email.com", updated.Email)
}

func TestUpdateProfileClearsPhone(t *testing.T) {
	users := newMemoryUserRepo()
	uc := usecase.NewUserUsecase(users)
	user := seedUser(t, users, "test@email.com", strPtr("+15551234567"))

	updated, err := uc.UpdateProfile(context.Background(), user.ID, &authdto.UserUpdateRequest{
		PhoneNumber: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.PhoneNumber)
}
