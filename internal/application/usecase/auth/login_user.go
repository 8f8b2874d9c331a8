// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserOutput carries the session tokens together with the budget
// settings the client needs to render its first dashboard.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Settings     *entity.BudgetSettings
}

// LoginUserUseCase authenticates a user and opens a budget session.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	settingsRepo    adapter.SettingsRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	defaults        entity.BudgetDefaults
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	settingsRepo adapter.SettingsRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	defaults entity.BudgetDefaults,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		settingsRepo:    settingsRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		defaults:        defaults,
	}
}

// Execute verifies the credentials, issues a token pair and returns the
// user's settings, seeding the defaults when the account has none.
// Unknown emails and wrong passwords both yield AUTH-020001.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and password are required",
			nil,
		)
	}

	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	settings, err := sessionSettings(ctx, uc.settingsRepo, uc.defaults, user.ID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
		Settings:     settings,
	}, nil
}
