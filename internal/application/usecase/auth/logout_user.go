package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budget-planner/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
// AllSessions also revokes every other refresh token of the token's owner.
type LogoutUserInput struct {
	RefreshToken string
	AllSessions  bool
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message         string
	RevokedSessions int64
}

// LogoutUserUseCase ends one session or all sessions of a user.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Revoking a single token is idempotent;
// signing out everywhere requires a token that still verifies.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.RefreshToken == "" {
		return nil, missingTokenError()
	}

	if !input.AllSessions {
		if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
			return nil, fmt.Errorf("failed to invalidate token: %w", err)
		}
		return &LogoutUserOutput{Message: "Successfully logged out", RevokedSessions: 1}, nil
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, refreshTokenError(err)
	}

	revoked, err := uc.tokenService.InvalidateAllRefreshTokens(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to invalidate sessions: %w", err)
	}
	slog.Info("Signed out of all sessions", "user_id", claims.UserID, "revoked", revoked)

	return &LogoutUserOutput{Message: "Signed out of all sessions", RevokedSessions: revoked}, nil
}
