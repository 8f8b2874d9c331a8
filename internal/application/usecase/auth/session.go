package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// sessionSettings loads the budget settings that accompany a session, seeding
// the defaults for accounts that have none (created before settings existed or
// whose row was lost).
func sessionSettings(
	ctx context.Context,
	repo adapter.SettingsRepository,
	defaults entity.BudgetDefaults,
	userID uuid.UUID,
) (*entity.BudgetSettings, error) {
	s, err := repo.FindByUserID(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s = defaults.NewSettings(userID)
	if err := repo.Save(ctx, s); err != nil {
		slog.Error("Failed to seed default settings", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	slog.Info("Seeded default budget settings", "user_id", userID)
	return s, nil
}

// refreshTokenError maps a refresh token validation failure to its AUTH code.
func refreshTokenError(err error) *domainerror.AuthError {
	if errors.Is(err, domainerror.ErrExpiredToken) {
		return domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "refresh token has expired", err)
	}
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid refresh token", domainerror.ErrInvalidToken)
}

func missingTokenError() *domainerror.AuthError {
	return domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "refresh token is required", domainerror.ErrInvalidToken)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
