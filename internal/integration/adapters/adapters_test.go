package adapters

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		category   string
		confidence float64
		wantErr    bool
	}{
		{"plain JSON", `{"category":"groceries","confidence":0.9,"reasoning":"supermarket"}`, "groceries", 0.9, false},
		{"fenced JSON", "```json\n{\"category\":\"coffee\",\"confidence\":0.7}\n```", "coffee", 0.7, false},
		{"trims category", `{"category":"  travel ","confidence":1}`, "travel", 1, false},
		{"missing category", `{"confidence":0.5}`, "", 0, true},
		{"not JSON", "I think it is groceries", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Category != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, got.Category)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("expected confidence %v, got %v", tt.confidence, got.Confidence)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	if _, err := responseText(nil); !errors.Is(err, errEmptyResponse) {
		t.Errorf("expected errEmptyResponse, got %v", err)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"category":"other"}`)}},
		}},
	}
	text, err := responseText(resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != `{"category":"other"}` {
		t.Errorf("unexpected text %q", text)
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := buildSuggestionPrompt(&adapter.CategorySuggestionRequest{
		Title:      "Starbucks",
		Amount:     4.5,
		IsExpense:  true,
		Candidates: []string{"coffee", "other"},
	})

	for _, want := range []string{"- coffee\n", "- other\n", `"Starbucks"`, "4.50", "expense"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestGeminiServiceUnavailable(t *testing.T) {
	s := NewGeminiService("", "")
	if s.IsAvailable() {
		t.Fatal("expected service without key to be unavailable")
	}
	if s.modelName != DefaultGeminiModel {
		t.Errorf("expected default model, got %s", s.modelName)
	}
	if _, err := s.Suggest(context.Background(), &adapter.CategorySuggestionRequest{Title: "x"}); err == nil {
		t.Error("expected error from unconfigured service")
	}
}

func TestCSVCodec(t *testing.T) {
	codec := NewCSVCodec()
	date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	original := []*entity.Transaction{
		entity.NewTransaction(uuid.New(), 12.5, `Dinner "downtown", with friends`, "restaurants", date, true),
		entity.NewTransaction(uuid.New(), 2000, "Salary", "other", date.AddDate(0, 0, -1), false),
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, original); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "ID,Amount,Title,Category,Date,IsExpense" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Dinner ""downtown"", with friends"`) {
		t.Errorf("expected quoted title, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], ",restaurants,2024-03-15 09:30:00,true") {
		t.Errorf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], `,"Salary",other,`) {
		t.Errorf("expected plain title to be quoted, got %q", lines[2])
	}

	decoded, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(decoded))
	}
	if decoded[0].ID != original[0].ID || decoded[0].Title != original[0].Title || !decoded[0].Date.Equal(date) {
		t.Errorf("unexpected first transaction %+v", decoded[0])
	}
	if decoded[1].Amount != 2000 || decoded[1].IsExpense {
		t.Errorf("unexpected second transaction %+v", decoded[1])
	}
}

func TestCSVCodecDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong header", "Foo,Bar,Baz,Qux,Quux,Corge\n"},
		{"bad amount", "ID,Amount,Title,Category,Date,IsExpense\n,abc,t,other,2024-01-01 00:00:00,true\n"},
		{"bad date", "ID,Amount,Title,Category,Date,IsExpense\n,1,t,other,01/01/2024,true\n"},
		{"bad flag", "ID,Amount,Title,Category,Date,IsExpense\n,1,t,other,2024-01-01 00:00:00,maybe\n"},
		{"missing column", "ID,Amount,Title,Category,Date,IsExpense\n,1,t,other,2024-01-01 00:00:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCSVCodec().Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("missing id gets a fresh one", func(t *testing.T) {
		txs, err := NewCSVCodec().Decode(strings.NewReader("ID,Amount,Title,Category,Date,IsExpense\n,1,t,other,2024-01-01 00:00:00,true\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if txs[0].ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
	})
}

func TestJSONCodec(t *testing.T) {
	codec := NewJSONCodec()
	date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	original := []*entity.Transaction{entity.NewTransaction(uuid.New(), 9.99, "Netflix", "subscriptions", date, true)}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, original); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), `"date": 1710495000`) {
		t.Errorf("expected unix seconds date, got %s", buf.String())
	}

	decoded, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decoded[0].ID != original[0].ID || !decoded[0].Date.Equal(date) || decoded[0].Amount != 9.99 {
		t.Errorf("unexpected transaction %+v", decoded[0])
	}
}

func TestCodecForFormat(t *testing.T) {
	tests := []struct {
		format    string
		extension string
		ok        bool
	}{
		{"", "csv", true},
		{"CSV", "csv", true},
		{"json", "json", true},
		{"xml", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			codec, ok := CodecForFormat(tt.format)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && codec.FileExtension() != tt.extension {
				t.Errorf("expected %s, got %s", tt.extension, codec.FileExtension())
			}
		})
	}
}

func TestPasswordService(t *testing.T) {
	s := newPasswordServiceWithCost(4)

	hash, err := s.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := s.VerifyPassword(hash, "correct horse"); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}
	if err := s.VerifyPassword(hash, "wrong"); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPasswordService_ValidatePassword(t *testing.T) {
	s := newPasswordServiceWithCost(4)

	tests := []struct {
		name     string
		password string
		email    string
		weak     bool
	}{
		{"long enough", "long enough", "ana@example.com", false},
		{"too short", "short", "ana@example.com", true},
		{"length counts runes", "ñandúñandú", "ana@example.com", false},
		{"beyond the bcrypt limit", strings.Repeat("a", 73), "ana@example.com", true},
		{"contains the email name", "Budget-Maria-2024", "maria@example.com", true},
		{"short email names are not checked", "ana-budget-2024", "an@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidatePassword(tt.password, tt.email)
			if tt.weak && !errors.Is(err, domainerror.ErrWeakPassword) {
				t.Errorf("expected ErrWeakPassword, got %v", err)
			}
			if !tt.weak && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

type memoryTokenRepo struct {
	tokens      map[string]time.Time
	owners      map[string]uuid.UUID
	invalidated map[string]bool
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{
		tokens:      make(map[string]time.Time),
		owners:      make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (m *memoryTokenRepo) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	m.tokens[token] = expiresAt
	m.owners[token] = userID
	return nil
}

func (m *memoryTokenRepo) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	exp, ok := m.tokens[token]
	return ok && !m.invalidated[token] && exp.After(time.Now()), nil
}

func (m *memoryTokenRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	m.invalidated[token] = true
	return nil
}

func (m *memoryTokenRepo) InvalidateAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for token, owner := range m.owners {
		if owner == userID && !m.invalidated[token] {
			m.invalidated[token] = true
			n++
		}
	}
	return n, nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryTokenRepo()
	s := NewTokenService("test-secret", repo)
	userID := uuid.New()

	pair, err := s.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("access token", func(t *testing.T) {
		claims, err := s.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != userID || claims.Email != "ana@example.com" {
			t.Errorf("unexpected claims %+v", claims)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := s.ValidateAccessToken(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
		if _, err := s.ValidateRefreshToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", repo)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("refresh tokens are unique and revocable", func(t *testing.T) {
		second, err := s.GenerateTokenPair(ctx, userID, "ana@example.com", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if second.RefreshToken == pair.RefreshToken {
			t.Error("expected distinct refresh tokens")
		}

		if valid, _ := s.IsRefreshTokenValid(ctx, pair.RefreshToken); !valid {
			t.Error("expected refresh token to be valid")
		}
		if err := s.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if valid, _ := s.IsRefreshTokenValid(ctx, pair.RefreshToken); valid {
			t.Error("expected refresh token to be revoked")
		}
	})

	t.Run("signing out everywhere revokes only the user's tokens", func(t *testing.T) {
		a, _ := s.GenerateTokenPair(ctx, userID, "ana@example.com", false)
		b, _ := s.GenerateTokenPair(ctx, userID, "ana@example.com", true)
		other, _ := s.GenerateTokenPair(ctx, uuid.New(), "bob@example.com", false)

		revoked, err := s.InvalidateAllRefreshTokens(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if revoked < 2 {
			t.Errorf("expected at least 2 revoked tokens, got %d", revoked)
		}
		for _, token := range []string{a.RefreshToken, b.RefreshToken} {
			if valid, _ := s.IsRefreshTokenValid(ctx, token); valid {
				t.Error("expected the user's token to be revoked")
			}
		}
		if valid, _ := s.IsRefreshTokenValid(ctx, other.RefreshToken); !valid {
			t.Error("expected another user's token to stay valid")
		}
	})
}
