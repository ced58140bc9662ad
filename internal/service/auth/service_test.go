package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memUserRepo struct {
	user.UserRepository
	byID   map[string]user.User
	seq    int
	linked []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]user.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	m.seq++
	u.ID = fmt.Sprintf("user-%d", m.seq)
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	u, err := m.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}
	provider := "google"
	u.OAuthProvider = &provider
	u.OAuthProviderID = &googleID
	m.byID[u.ID] = u
	m.linked = append(m.linked, email)
	return u, nil
}

type memTokenRepo struct {
	owners  map[string]string
	revoked map[string]bool
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{owners: make(map[string]string), revoked: make(map[string]bool)}
}

func (m *memTokenRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	m.owners[token] = userID
	return nil
}

func (m *memTokenRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	owner, ok := m.owners[token]
	if !ok {
		return "", true, nil
	}
	return owner, m.revoked[token], nil
}

func (m *memTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	m.revoked[token] = true
	return nil
}

type fixture struct {
	svc    auth.AuthService
	users  *memUserRepo
	tokens *memTokenRepo
	jwt    jwt.Service
}

func newFixture(t *testing.T) *fixture {
	jwtService, err := jwt.NewJWTService(testSecret, "1h", "24h", false)
	require.NoError(t, err)

	f := &fixture{users: newMemUserRepo(), tokens: newMemTokenRepo(), jwt: jwtService}
	svc := NewAuthService(f.users, f.tokens, jwtService, passthroughTx{})
	svc.(*AuthServiceImpl).bcryptCost = bcrypt.MinCost
	f.svc = svc
	return f
}

var session = auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

func signUpRequest(email string) auth.SignUpRequest {
	return auth.SignUpRequest{
		FirstName:       "Mona",
		LastName:        "Adel",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_SignUp_CreatesEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.SignUp(ctx, signUpRequest(" Mona@GIU.edu "), session)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", f.tokens.owners[resp.RefreshToken])

	created, err := f.users.GetByEmail(ctx, "mona@giu.edu")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, created.Role)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "password123", *created.PasswordHash)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	_, err = f.svc.SignUp(ctx, signUpRequest("MONA@giu.edu"), session)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestAuthService_SignUp_PasswordMismatch(t *testing.T) {
	f := newFixture(t)

	req := signUpRequest("mona@giu.edu")
	req.ConfirmPassword = "different"
	_, err := f.svc.SignUp(context.Background(), req, session)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "confirm_password")
	assert.Empty(t, f.users.byID)
}

func TestAuthService_SignIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	resp, err := f.svc.SignIn(ctx, auth.SignInRequest{Email: "MONA@giu.edu", Password: "password123"}, session)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = f.svc.SignIn(ctx, auth.SignInRequest{Email: "mona@giu.edu", Password: "wrongpass"}, session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.SignIn(ctx, auth.SignInRequest{Email: "nobody@giu.edu", Password: "password123"}, session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignIn_GoogleOnlyAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SignInWithGoogle(ctx, auth.GoogleIdentity{GoogleID: "g-1", Email: "g@giu.edu"}, session)
	require.NoError(t, err)

	_, err = f.svc.SignIn(ctx, auth.SignInRequest{Email: "g@giu.edu", Password: "password123"}, session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignInWithGoogle_LinksExistingAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	_, err = f.svc.SignInWithGoogle(ctx, auth.GoogleIdentity{GoogleID: "g-1", Email: "mona@giu.edu"}, session)
	require.NoError(t, err)
	assert.Equal(t, []string{"mona@giu.edu"}, f.users.linked)
	assert.Len(t, f.users.byID, 1)

	// A second Google sign-in does not relink.
	_, err = f.svc.SignInWithGoogle(ctx, auth.GoogleIdentity{GoogleID: "g-1", Email: "mona@giu.edu"}, session)
	require.NoError(t, err)
	assert.Len(t, f.users.linked, 1)
}

func TestAuthService_RefreshAndSignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tokens, err := f.svc.SignUp(ctx, signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	refreshed, err := f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, f.svc.SignOut(ctx, tokens.RefreshToken))
	assert.True(t, f.tokens.revoked[tokens.RefreshToken])
	assert.True(t, f.jwt.IsTokenRevoked(tokens.RefreshToken))

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	f := newFixture(t)
	tokens, err := f.svc.SignUp(context.Background(), signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, signUpRequest("mona@giu.edu"), session)
	require.NoError(t, err)

	me, err := f.svc.Me(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "mona@giu.edu", me.Email)
	assert.Equal(t, user.RoleEmployee, me.Role)
	assert.False(t, me.CanManage)

	_, err = f.svc.Me(ctx, "user-9")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
