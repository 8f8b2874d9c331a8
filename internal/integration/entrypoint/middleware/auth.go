// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey holds the uuid.UUID of the user owning the budget being served.
const UserIDKey ContextKey = "user_id"

// AuthMiddleware resolves the budget owner from a bearer access token.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects requests without a valid access token. Failures
// answer 401 with AUTH-030003 (no token), AUTH-030002 (expired) or
// AUTH-030001 (anything else).
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Next()
	}
}

var errMissingToken = errors.New("access token is required")

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errMissingToken
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.ErrInvalidToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	response := dto.ErrorResponse{
		Error: "Invalid access token",
		Code:  string(domainerror.ErrCodeInvalidToken),
	}
	switch {
	case errors.Is(err, errMissingToken):
		response.Error = "Access token is required"
		response.Code = string(domainerror.ErrCodeMissingToken)
	case errors.Is(err, domainerror.ErrExpiredToken):
		response.Error = "Access token has expired"
		response.Code = string(domainerror.ErrCodeExpiredToken)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, response)
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
