// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Password      string `json:"password" binding:"required"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
// AllSessions signs the owner of the token out of every device.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
	AllSessions  bool   `json:"all_sessions"`
}

// LogoutResponse represents the response for user logout.
type LogoutResponse struct {
	Message         string `json:"message"`
	RevokedSessions int64  `json:"revoked_sessions"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         UserResponse      `json:"user"`
	Settings     *SettingsResponse `json:"settings,omitempty"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	Settings     *SettingsResponse `json:"settings,omitempty"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToOptionalSettingsResponse converts settings that may be absent.
func ToOptionalSettingsResponse(settings *entity.BudgetSettings) *SettingsResponse {
	if settings == nil {
		return nil
	}
	s := ToSettingsResponse(settings)
	return &s
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
