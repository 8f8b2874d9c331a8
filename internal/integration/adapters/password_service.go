// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/budget-planner/backend/internal/application/adapter"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

const (
	bcryptCost = 12
	// minPasswordLength counts runes, not bytes.
	minPasswordLength = 8
	// maxPasswordBytes is where bcrypt stops reading input.
	maxPasswordBytes = 72
	// minEmailNameLength is the shortest email local part checked against the password.
	minEmailNameLength = 3
)

type passwordService struct {
	cost int
}

// NewPasswordService creates the bcrypt-backed password service.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{cost: bcryptCost}
}

// newPasswordServiceWithCost is used by tests to keep hashing fast.
func newPasswordServiceWithCost(cost int) *passwordService {
	return &passwordService{cost: cost}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// ValidatePassword rejects passwords that are too short, too long for bcrypt,
// or that contain the local part of the account email.
func (s *passwordService) ValidatePassword(password, email string) error {
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		return fmt.Errorf("%w: at least %d characters", domainerror.ErrWeakPassword, minPasswordLength)
	case len(password) > maxPasswordBytes:
		return fmt.Errorf("%w: at most %d bytes", domainerror.ErrWeakPassword, maxPasswordBytes)
	}

	name, _, _ := strings.Cut(strings.ToLower(email), "@")
	if len(name) >= minEmailNameLength && strings.Contains(strings.ToLower(password), name) {
		return fmt.Errorf("%w: must not contain the email name", domainerror.ErrWeakPassword)
	}
	return nil
}
