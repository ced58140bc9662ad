package auth

import (
	"context"
)

type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest, session SessionTrackingRequest) (TokenResponse, error)
	SignIn(ctx context.Context, req SignInRequest, session SessionTrackingRequest) (TokenResponse, error)
	SignInWithGoogle(ctx context.Context, identity GoogleIdentity, session SessionTrackingRequest) (TokenResponse, error)
	SignOut(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Me(ctx context.Context, userID string) (SessionResponse, error)
}

// GoogleIdentity is the verified profile returned by the Google userinfo endpoint.
type GoogleIdentity struct {
	GoogleID  string
	Email     string
	FirstName string
	LastName  string
}
