package auth

import (
	"context"
	"fmt"

	"github.com/talentreach/outreach-backend-go/internal/config"
	"github.com/talentreach/outreach-backend-go/internal/domain/auth"
	"github.com/talentreach/outreach-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const operatorRole = "admin"

type AuthServiceImpl struct {
	admin config.AdminConfig
	jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:   admin,
		Service: jwtService,
	}
}

// Login implements auth.AuthService against the single configured
// operator identity. When ADMIN_PASSWORD_HASH is set the password is
// checked with bcrypt, otherwise by exact comparison.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Username != a.admin.Username {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if a.admin.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password)); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
	} else if req.Password != a.admin.Password {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(a.admin.Username, operatorRole)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.UserInfo{
			Username: a.admin.Username,
			Role:     operatorRole,
		},
	}, nil
}
