package repository

import (
	"context"
	"errors"
	"time"

	authdomain "dda-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements UserRepository on gorm.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) FindByPhone(ctx context.Context, phoneNumber string) (*authdomain.User, error) {
	return r.findOne(ctx, "phone_number = ?", phoneNumber)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(user).Error
}

// GetOrCreate runs inside a transaction so two concurrent logins for the
// same email resolve to one row. The unique index on email backs it up.
func (r *userRepository) GetOrCreate(ctx context.Context, candidate *authdomain.User) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", candidate.Email).
			First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		candidate.ID = uuid.New().String()
		candidate.CreatedAt = time.Now()
		candidate.UpdatedAt = time.Now()
		if err := tx.Create(candidate).Error; err != nil {
			return err
		}
		user = *candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
