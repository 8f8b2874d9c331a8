package auth

import (
	"context"
	"fmt"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput carries the rotated token pair and the current settings,
// so a client picks up subscription changes made on another device.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
	Settings     *entity.BudgetSettings
}

// RefreshTokenUseCase rotates a refresh token.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	settingsRepo adapter.SettingsRepository
	tokenService adapter.TokenService
	defaults     entity.BudgetDefaults
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(
	userRepo adapter.UserRepository,
	settingsRepo adapter.SettingsRepository,
	tokenService adapter.TokenService,
	defaults entity.BudgetDefaults,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		tokenService: tokenService,
		defaults:     defaults,
	}
}

// Execute revokes the presented refresh token and issues a new pair.
// A token is accepted once; its account must still exist.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, missingTokenError()
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, refreshTokenError(err)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been revoked",
			domainerror.ErrInvalidToken,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil || user.ID != claims.UserID {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"account no longer exists",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	settings, err := sessionSettings(ctx, uc.settingsRepo, uc.defaults, user.ID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Settings:     settings,
	}, nil
}
