package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	authdomain "dda-backend/internal/auth/domain"
	"dda-backend/internal/auth/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and skips
// the test when it is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.SessionToken{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM session_tokens")
		db.Exec("DELETE FROM users")
	})
	return db
}

func newDBUser(email string) *authdomain.User {
	return &authdomain.User{
		Email:      email,
		FamilyName: "Graham",
		GivenName:  "Austin",
		Source:     authdomain.UserSourceGoogle,
	}
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := newDBUser(uuid.NewString() + "@email.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := repo.FindByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	phone := "+15559876543"
	byEmail.PhoneNumber = &phone
	require.NoError(t, repo.Update(ctx, byEmail))

	byPhone, err := repo.FindByPhone(ctx, phone)
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, user.ID, byPhone.ID)
}

func TestUserRepositoryGetOrCreateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()
	email := uuid.NewString() + "@email.com"

	first, err := repo.GetOrCreate(ctx, newDBUser(email))
	require.NoError(t, err)

	second, err := repo.GetOrCreate(ctx, newDBUser(email))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&authdomain.User{}).Where("email = ?", email).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSessionTokenRepositoryReplace(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionTokenRepository(db)
	ctx := context.Background()

	user := newDBUser(uuid.NewString() + "@email.com")
	require.NoError(t, users.Create(ctx, user))

	first, err := sessions.Replace(ctx, user, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, first.Token)

	second, err := sessions.Replace(ctx, user, 15*time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	stale, err := sessions.FindByToken(ctx, first.Token)
	require.NoError(t, err)
	assert.Nil(t, stale, "replaced token must be gone")

	live, err := sessions.FindByToken(ctx, second.Token)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, user.ID, live.User.ID, "lookup preloads the owning user")

	var count int64
	require.NoError(t, db.Model(&authdomain.SessionToken{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "at most one live session per user")

	require.NoError(t, sessions.DeleteForUser(ctx, user.ID))
	gone, err := sessions.FindByToken(ctx, second.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
