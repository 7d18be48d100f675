package usecase

import (
	"context"
	"fmt"
	"log/slog"

	authdomain "dda-backend/internal/auth/domain"
	authdto "dda-backend/internal/auth/dto"
	"dda-backend/internal/auth/repository"
	"dda-backend/pkg/apperror"
)

// userUsecase implements UserUsecase.
type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	if user == nil {
		return nil, apperror.NotFound("User", userID)
	}
	return user, nil
}

// UpdateProfile applies a partial update. Email and phone collisions with a
// different user are rejected before any write; the unique indexes remain
// the storage-level backstop.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, update *authdto.UserUpdateRequest) (*authdomain.User, error) {
	user, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		owner, err := u.userRepo.FindByEmail(ctx, *update.Email)
		if err != nil {
			return nil, fmt.Errorf("check email ownership: %w", err)
		}
		if owner != nil && owner.ID != user.ID {
			slog.Warn("profile update rejected, email taken", "user_id", userID)
			return nil, apperror.Conflict("User", userID)
		}
		user.Email = *update.Email
	}

	if update.PhoneNumber != nil {
		if *update.PhoneNumber == "" {
			user.PhoneNumber = nil
		} else {
			owner, err := u.userRepo.FindByPhone(ctx, *update.PhoneNumber)
			if err != nil {
				return nil, fmt.Errorf("check phone ownership: %w", err)
			}
			if owner != nil && owner.ID != user.ID {
				slog.Warn("profile update rejected, phone taken", "user_id", userID)
				return nil, apperror.Conflict("User", userID)
			}
			phone := *update.PhoneNumber
			user.PhoneNumber = &phone
		}
	}

	if update.FamilyName != nil {
		user.FamilyName = *update.FamilyName
	}
	if update.GivenName != nil {
		user.GivenName = *update.GivenName
	}
	if update.ProfilePicture != nil {
		user.ProfilePicture = *update.ProfilePicture
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %s: %w", userID, err)
	}
	slog.Info("user profile updated", "user_id", userID)
	return user, nil
}
