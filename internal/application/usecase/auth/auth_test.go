package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeSettingsRepo struct {
	saved map[uuid.UUID]*entity.BudgetSettings
}

func (f *fakeSettingsRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BudgetSettings, error) {
	s, ok := f.saved[userID]
	if !ok {
		return nil, domainerror.ErrSettingsNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.BudgetSettings) error {
	f.saved[settings.UserID] = settings
	return nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePassword(password, email string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	revoked      map[string]bool
	revokedUsers map[uuid.UUID]bool
	claims       map[string]*adapter.TokenClaims
	issued       int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		revoked:      make(map[string]bool),
		revokedUsers: make(map[uuid.UUID]bool),
		claims:       make(map[string]*adapter.TokenClaims),
	}
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	f.issued++
	refresh := fmt.Sprintf("refresh:%s:%d", userID, f.issued)
	f.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  "access:" + userID.String(),
		RefreshToken: refresh,
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token == "stale" {
		return nil, fmt.Errorf("%w: exp", domainerror.ErrExpiredToken)
	}
	claims, ok := f.claims[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	claims, ok := f.claims[token]
	return ok && !f.revoked[token] && !f.revokedUsers[claims.UserID], nil
}

func (f *fakeTokenService) InvalidateAllRefreshTokens(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.revokedUsers[userID] = true
	var n int64
	for token, claims := range f.claims {
		if claims.UserID == userID && !f.revoked[token] {
			n++
		}
	}
	return n, nil
}

func expectAuthError(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}

func TestRegisterUserUseCase(t *testing.T) {
	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepo, *fakeSettingsRepo) {
		users := newFakeUserRepo()
		settings := &fakeSettingsRepo{saved: make(map[uuid.UUID]*entity.BudgetSettings)}
		uc := NewRegisterUserUseCase(users, settings, fakePasswordService{}, newFakeTokenService(), entity.StandardBudgetDefaults())
		return uc, users, settings
	}

	t.Run("registers a user with default settings", func(t *testing.T) {
		uc, users, settings := newUseCase()

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:         " Ana@Example.com ",
			Name:          "Ana",
			Password:      "correct horse",
			TermsAccepted: true,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.User.Email != "ana@example.com" {
			t.Errorf("expected normalized email, got %s", output.User.Email)
		}
		if _, ok := users.users["ana@example.com"]; !ok {
			t.Error("expected user to be stored")
		}
		s, ok := settings.saved[output.User.ID]
		if !ok {
			t.Fatal("expected default settings to be stored")
		}
		if s.DailyBudgetAmount != entity.DefaultDailyBudgetAmount || s.PremiumEnabled() {
			t.Errorf("unexpected default settings: %+v", s)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected tokens")
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input RegisterUserInput
			code  domainerror.AuthErrorCode
		}{
			{"terms not accepted", RegisterUserInput{Email: "a@b.co", Password: "long enough"}, domainerror.ErrCodeTermsNotAccepted},
			{"invalid email", RegisterUserInput{Email: "nope", Password: "long enough", TermsAccepted: true}, domainerror.ErrCodeInvalidEmail},
			{"weak password", RegisterUserInput{Email: "a@b.co", Password: "short", TermsAccepted: true}, domainerror.ErrCodeWeakPassword},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, _, _ := newUseCase()
				_, err := uc.Execute(context.Background(), tt.input)
				expectAuthError(t, err, tt.code)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _ := newUseCase()
		input := RegisterUserInput{Email: "a@b.co", Password: "long enough", TermsAccepted: true}

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err := uc.Execute(context.Background(), input)
		expectAuthError(t, err, domainerror.ErrCodeEmailExists)
	})
}

func newSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{saved: make(map[uuid.UUID]*entity.BudgetSettings)}
}

func TestLoginUserUseCase(t *testing.T) {
	users := newFakeUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct horse", time.Now().UTC())
	users.users[user.Email] = user
	settings := newSettingsRepo()
	uc := NewLoginUserUseCase(users, settings, fakePasswordService{}, newFakeTokenService(), entity.StandardBudgetDefaults())

	t.Run("valid credentials seed missing settings", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), LoginUserInput{Email: "ANA@example.com", Password: "correct horse"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.User.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, output.User.ID)
		}
		if output.Settings == nil || settings.saved[user.ID] != output.Settings {
			t.Fatal("expected the seeded settings to be stored and returned")
		}
		if output.Settings.DailyBudgetAmount != entity.DefaultDailyBudgetAmount {
			t.Errorf("expected default daily amount, got %v", output.Settings.DailyBudgetAmount)
		}
	})

	t.Run("stored settings are returned as is", func(t *testing.T) {
		stored := entity.NewBudgetSettings(user.ID, 42, entity.BudgetPeriodWeekly, "EUR")
		settings.saved[user.ID] = stored

		output, err := uc.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "correct horse"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Settings != stored {
			t.Errorf("expected stored settings, got %+v", output.Settings)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "  ", Password: "correct horse"})
		expectAuthError(t, err, domainerror.ErrCodeMissingFields)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "wrong"})
		expectAuthError(t, err, domainerror.ErrCodeInvalidCredentials)

		_, err = uc.Execute(context.Background(), LoginUserInput{Email: "bob@example.com", Password: "correct horse"})
		expectAuthError(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	users := newFakeUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct horse", time.Now().UTC())
	users.users[user.Email] = user
	settings := newSettingsRepo()
	tokens := newFakeTokenService()
	refresh := NewRefreshTokenUseCase(users, settings, tokens, entity.StandardBudgetDefaults())

	pair, _ := tokens.GenerateTokenPair(context.Background(), user.ID, user.Email, false)

	t.Run("rotates the token and returns settings", func(t *testing.T) {
		output, err := refresh.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !tokens.revoked[pair.RefreshToken] {
			t.Error("expected the old refresh token to be revoked")
		}
		if output.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token")
		}
		if output.Settings == nil || settings.saved[user.ID] == nil {
			t.Error("expected settings to be seeded and returned")
		}
	})

	t.Run("token errors", func(t *testing.T) {
		ghost, _ := tokens.GenerateTokenPair(context.Background(), uuid.New(), "ghost@example.com", false)

		tests := []struct {
			name  string
			token string
			code  domainerror.AuthErrorCode
		}{
			{"reused token", pair.RefreshToken, domainerror.ErrCodeInvalidToken},
			{"unsigned token", "garbage", domainerror.ErrCodeInvalidToken},
			{"expired token", "stale", domainerror.ErrCodeExpiredToken},
			{"empty token", "", domainerror.ErrCodeMissingToken},
			{"deleted account", ghost.RefreshToken, domainerror.ErrCodeUserNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := refresh.Execute(context.Background(), RefreshTokenInput{RefreshToken: tt.token})
				expectAuthError(t, err, tt.code)
			})
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("single session", func(t *testing.T) {
		tokens := newFakeTokenService()
		logout := NewLogoutUserUseCase(tokens)
		pair, _ := tokens.GenerateTokenPair(context.Background(), userID, "ana@example.com", false)

		output, err := logout.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !tokens.revoked[pair.RefreshToken] || output.RevokedSessions != 1 {
			t.Error("expected logout to revoke the refresh token")
		}

		if _, err := logout.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken}); err != nil {
			t.Errorf("expected a repeated logout to succeed, got %v", err)
		}
	})

	t.Run("all sessions", func(t *testing.T) {
		tokens := newFakeTokenService()
		logout := NewLogoutUserUseCase(tokens)
		first, _ := tokens.GenerateTokenPair(context.Background(), userID, "ana@example.com", false)
		second, _ := tokens.GenerateTokenPair(context.Background(), userID, "ana@example.com", true)

		output, err := logout.Execute(context.Background(), LogoutUserInput{RefreshToken: first.RefreshToken, AllSessions: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.RevokedSessions != 2 {
			t.Errorf("expected 2 revoked sessions, got %d", output.RevokedSessions)
		}
		if valid, _ := tokens.IsRefreshTokenValid(context.Background(), second.RefreshToken); valid {
			t.Error("expected the other session to be revoked")
		}
	})

	t.Run("errors", func(t *testing.T) {
		logout := NewLogoutUserUseCase(newFakeTokenService())

		_, err := logout.Execute(context.Background(), LogoutUserInput{})
		expectAuthError(t, err, domainerror.ErrCodeMissingToken)

		_, err = logout.Execute(context.Background(), LogoutUserInput{RefreshToken: "stale", AllSessions: true})
		expectAuthError(t, err, domainerror.ErrCodeExpiredToken)
	})
}
