package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB returns a clean, migrated database or skips the test.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	setup, err := NewTestDatabase(ctx)
	if errors.Is(err, ErrNoTestDatabase) {
		t.Skip("TEST_DATABASE_URL not set, skipping repository test")
	}
	require.NoError(t, err)
	t.Cleanup(setup.Close)

	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup.DB
}

func createTestUser(t *testing.T, ctx context.Context, repo user.UserRepository, email string, role user.Role) user.User {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashedStr := string(hashedPassword)

	created, err := repo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: &hashedStr,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	})
	require.NoError(t, err)
	return created
}

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	created := createTestUser(t, ctx, userRepo, "newuser@giu.edu", user.RoleEmployee)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "newuser@giu.edu", created.Email)
	assert.Equal(t, user.RoleEmployee, created.Role)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	createTestUser(t, ctx, userRepo, "dup@giu.edu", user.RoleEmployee)

	_, err := userRepo.Create(ctx, user.User{Email: "dup@giu.edu", FirstName: "A", LastName: "B", Role: user.RoleEmployee})
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	created := createTestUser(t, ctx, userRepo, "find@giu.edu", user.RoleHRManager)

	found, err := userRepo.GetByEmail(ctx, "find@giu.edu")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte("password123")))

	_, err = userRepo.GetByEmail(ctx, "missing@giu.edu")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_LinkGoogleAccount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	createTestUser(t, ctx, userRepo, "link@giu.edu", user.RoleEmployee)

	linked, err := userRepo.LinkGoogleAccount(ctx, "google-123", "link@giu.edu")
	require.NoError(t, err)
	require.NotNil(t, linked.OAuthProvider)
	assert.Equal(t, "google", *linked.OAuthProvider)
	assert.Equal(t, "google-123", *linked.OAuthProviderID)

	_, err = userRepo.LinkGoogleAccount(ctx, "google-456", "nobody@giu.edu")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UpdateRoleAndList(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	a := createTestUser(t, ctx, userRepo, "a@giu.edu", user.RoleEmployee)
	createTestUser(t, ctx, userRepo, "b@giu.edu", user.RoleAdmin)

	require.NoError(t, userRepo.UpdateRole(ctx, a.ID, user.RoleHRManager))
	updated, err := userRepo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleHRManager, updated.Role)

	assert.ErrorIs(t, userRepo.UpdateRole(ctx, "missing", user.RoleAdmin), user.ErrUserNotFound)

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

// ===== REFRESH TOKEN REPOSITORY TESTS =====

func TestJWTRepository_RevokeRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, ctx, postgresql.NewUserRepository(db), "tok@giu.edu", user.RoleEmployee)
	tokenRepo := postgresql.NewJWTRepository(db)

	expiresAt := time.Now().Add(time.Hour).Unix()
	session := auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "test"}
	require.NoError(t, tokenRepo.CreateRefreshToken(ctx, u.ID, "refresh-1", expiresAt, session))

	userID, revoked, err := tokenRepo.IsRefreshTokenRevoked(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.False(t, revoked)

	require.NoError(t, tokenRepo.RevokeRefreshToken(ctx, "refresh-1"))

	_, revoked, err = tokenRepo.IsRefreshTokenRevoked(ctx, "refresh-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
