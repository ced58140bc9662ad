package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type fakeAuthService struct {
	auth.AuthService
	signInFn  func(req auth.SignInRequest) (auth.TokenResponse, error)
	googleFn  func(identity auth.GoogleIdentity) (auth.TokenResponse, error)
	signedOut []string
	refreshed []string
	me        auth.SessionResponse
}

func (f *fakeAuthService) SignUp(ctx context.Context, req auth.SignUpRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	return testTokens(), nil
}

func (f *fakeAuthService) SignIn(ctx context.Context, req auth.SignInRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return f.signInFn(req)
}

func (f *fakeAuthService) SignInWithGoogle(ctx context.Context, identity auth.GoogleIdentity, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	return f.googleFn(identity)
}

func (f *fakeAuthService) SignOut(ctx context.Context, refreshToken string) error {
	f.signedOut = append(f.signedOut, refreshToken)
	return nil
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}
	f.refreshed = append(f.refreshed, req.RefreshToken)
	return auth.AccessTokenResponse{AccessToken: "new-access", AccessTokenExpiresIn: 1700003600}, nil
}

func (f *fakeAuthService) Me(ctx context.Context, userID string) (auth.SessionResponse, error) {
	if f.me.UserID != userID {
		return auth.SessionResponse{}, auth.ErrUserNotFound
	}
	return f.me, nil
}

type fakeGoogleService struct {
	info oauth.GoogleInformation
}

func (f *fakeGoogleService) GenerateState() (string, error) { return "state-123", nil }

func (f *fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.example.test/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "google-" + code}, nil
}

func (f *fakeGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return f.info, nil
}

func testTokens() auth.TokenResponse {
	return auth.TokenResponse{
		AccessToken:           "access",
		AccessTokenExpiresIn:  1700003600,
		RefreshToken:          "refresh",
		RefreshTokenExpiresIn: 1700604800,
	}
}

func newTestJWTService(t *testing.T) jwt.Service {
	svc, err := jwt.NewJWTService(handlerTestSecret, "1h", "24h", false)
	require.NoError(t, err)
	return svc
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignIn_SetsRefreshCookie(t *testing.T) {
	svc := &fakeAuthService{signInFn: func(req auth.SignInRequest) (auth.TokenResponse, error) {
		assert.Equal(t, "hr@giu.edu", req.Email)
		return testTokens(), nil
	}}
	h := NewAuthHandler(newTestJWTService(t), svc, nil, "http://localhost:5173", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", jsonBody(t, map[string]string{
		"email": "hr@giu.edu", "password": "secret1",
	}))
	h.SignIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var tokens auth.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	assert.Equal(t, "access", tokens.AccessToken)

	cookie := findCookie(rec.Result().Cookies(), "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{signInFn: func(auth.SignInRequest) (auth.TokenResponse, error) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}}
	h := NewAuthHandler(newTestJWTService(t), svc, nil, "", false)

	rec := httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{
		"email": "hr@giu.edu", "password": "wrong-password",
	})))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec.Result().Cookies(), "refresh_token"))
}

func TestSignIn_MalformedBody(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, nil, "", false)

	rec := httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_ValidationDetails(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, nil, "", false)

	rec := httptest.NewRecorder()
	h.SignUp(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, auth.SignUpRequest{
		FirstName:       "Mona",
		LastName:        "Adel",
		Email:           "mona@giu.edu",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "passwords don't match", env.Error.Details["confirm_password"])
}

func TestSignOut_ReadsCookieAndClearsIt(t *testing.T) {
	svc := &fakeAuthService{}
	h := NewAuthHandler(newTestJWTService(t), svc, nil, "", false)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cookie-token"}, svc.signedOut)

	cookie := findCookie(rec.Result().Cookies(), "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestRefreshToken_FromBody(t *testing.T) {
	svc := &fakeAuthService{}
	h := NewAuthHandler(newTestJWTService(t), svc, nil, "", false)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{
		"refresh_token": "body-token",
	})))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"body-token"}, svc.refreshed)
}

func TestRefreshToken_Missing(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, nil, "", false)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLoginWithGoogle_Disabled(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, nil, "", false)

	rec := httptest.NewRecorder()
	h.LoginWithGoogle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginWithGoogle_RedirectsWithState(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, &fakeGoogleService{}, "", false)

	rec := httptest.NewRecorder()
	h.LoginWithGoogle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "state=state-123")

	cookie := findCookie(rec.Result().Cookies(), oauthStateCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "state-123", cookie.Value)
	assert.Equal(t, oauthCallbackPath, cookie.Path)
}

func TestOAuthCallbackGoogle_StateMismatch(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, &fakeGoogleService{}, "http://front.test", false)

	req := httptest.NewRequest(http.MethodGet, "/?state=other&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "state-123"})
	rec := httptest.NewRecorder()
	h.OAuthCallbackGoogle(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://front.test/auth/callback/google?error=state_mismatch", rec.Header().Get("Location"))
}

func TestOAuthCallbackGoogle_SignsIn(t *testing.T) {
	var got auth.GoogleIdentity
	svc := &fakeAuthService{googleFn: func(identity auth.GoogleIdentity) (auth.TokenResponse, error) {
		got = identity
		return testTokens(), nil
	}}
	google := &fakeGoogleService{info: oauth.GoogleInformation{
		GoogleID:   "g-1",
		Email:      "mona@giu.edu",
		GivenName:  "Mona",
		FamilyName: "Adel",
	}}
	h := NewAuthHandler(newTestJWTService(t), svc, google, "http://front.test", false)

	req := httptest.NewRequest(http.MethodGet, "/?state=state-123&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "state-123"})
	rec := httptest.NewRecorder()
	h.OAuthCallbackGoogle(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, auth.GoogleIdentity{GoogleID: "g-1", Email: "mona@giu.edu", FirstName: "Mona", LastName: "Adel"}, got)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "access", location.Query().Get("access_token"))
	assert.NotNil(t, findCookie(rec.Result().Cookies(), "refresh_token"))
}

func TestOAuthCallbackGoogle_ProviderError(t *testing.T) {
	h := NewAuthHandler(newTestJWTService(t), &fakeAuthService{}, &fakeGoogleService{}, "http://front.test", false)

	rec := httptest.NewRecorder()
	h.OAuthCallbackGoogle(rec, httptest.NewRequest(http.MethodGet, "/?error=access_denied", nil))

	assert.Equal(t, "http://front.test/auth/callback/google?error=access_denied", rec.Header().Get("Location"))
}

func accessToken(t *testing.T, svc jwt.Service, userID string, role user.Role) string {
	token, _, err := svc.GenerateAccessToken(userID, userID+"@giu.edu", role)
	require.NoError(t, err)
	return token
}
