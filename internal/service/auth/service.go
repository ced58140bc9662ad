package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

const oauthProviderGoogle = "google"

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	tokenRepo  auth.RefreshTokenRepository
	jwtService jwt.Service
	tx         shared.Transactor
	bcryptCost int
}

func NewAuthService(userRepo user.UserRepository, tokenRepo auth.RefreshTokenRepository, jwtService jwt.Service, tx shared.Transactor) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		tx:         tx,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens signs an access/refresh pair and stores the refresh token.
// Callers run it inside a transaction together with any user writes.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var (
		tokens auth.TokenResponse
		err    error
	)

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.tokenRepo.CreateRefreshToken(ctx, u.ID, tokens.RefreshToken, tokens.RefreshTokenExpiresIn, session); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}
	return tokens, nil
}

// SignUp implements auth.AuthService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	_, err := a.userRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	case !errors.Is(err, user.ErrUserNotFound):
		return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var tokens auth.TokenResponse
	err = a.tx.WithinTx(ctx, func(ctx context.Context) error {
		newUser, err := a.userRepo.Create(ctx, user.User{
			Email:        req.Email,
			PasswordHash: &hashedPassword,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return auth.ErrEmailAlreadyExists
			}
			return err
		}

		tokens, err = a.issueTokens(ctx, newUser, session)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokens, nil
}

// SignIn implements auth.AuthService.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Google-only accounts have no password.
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokens auth.TokenResponse
	err = a.tx.WithinTx(ctx, func(ctx context.Context) error {
		tokens, err = a.issueTokens(ctx, userData, session)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokens, nil
}

// SignInWithGoogle implements auth.AuthService. Unknown emails get a new
// employee account; known password accounts are linked to the Google id.
func (a *AuthServiceImpl) SignInWithGoogle(ctx context.Context, identity auth.GoogleIdentity, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse

	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		userData, err := a.userRepo.GetByEmail(ctx, identity.Email)
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			provider := oauthProviderGoogle
			googleID := identity.GoogleID
			userData, err = a.userRepo.Create(ctx, user.User{
				Email:           identity.Email,
				FirstName:       identity.FirstName,
				LastName:        identity.LastName,
				Role:            user.RoleEmployee,
				OAuthProvider:   &provider,
				OAuthProviderID: &googleID,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to get user data by email: %w", err)
		case userData.OAuthProvider == nil || userData.OAuthProviderID == nil:
			userData, err = a.userRepo.LinkGoogleAccount(ctx, identity.GoogleID, userData.Email)
			if err != nil {
				return err
			}
		}

		tokens, err = a.issueTokens(ctx, userData, session)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokens, nil
}

// SignOut implements auth.AuthService.
func (a *AuthServiceImpl) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, isRevoked, err := a.tokenRepo.IsRefreshTokenRevoked(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != jwt.TokenTypeRefresh {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// The store is checked with the raw token; it hashes internally.
	userID, isRevoked, err := a.tokenRepo.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return resp, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.SessionResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SessionResponse{}, auth.ErrUserNotFound
		}
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		UserID:    userData.ID,
		Email:     userData.Email,
		FirstName: userData.FirstName,
		LastName:  userData.LastName,
		Role:      userData.Role,
		CanManage: user.HasPermission(userData.Role, user.PermissionRecordsManage),
	}, nil
}
