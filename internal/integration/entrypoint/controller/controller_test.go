package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/infra/db"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthController(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]HealthCheck
		expected string
	}{
		{
			name:     "all dependencies up",
			checks:   map[string]HealthCheck{"database": func() bool { return true }},
			expected: "ok",
		},
		{
			name: "one dependency down",
			checks: map[string]HealthCheck{
				"database": func() bool { return true },
				"redis":    func() bool { return false },
			},
			expected: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthController(tt.checks)
			h.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

			r := gin.New()
			r.GET("/health", h.Check)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			var response HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Status != tt.expected {
				t.Errorf("expected status %s, got %s", tt.expected, response.Status)
			}
			if len(response.Dependencies) != len(tt.checks) {
				t.Errorf("expected %d dependencies, got %d", len(tt.checks), len(response.Dependencies))
			}
			if response.Timestamp != "2024-03-15T12:00:00Z" {
				t.Errorf("expected fixed timestamp, got %s", response.Timestamp)
			}
		})
	}
}

type dashboardFixture struct {
	router   *gin.Engine
	userID   uuid.UUID
	settings *entity.BudgetSettings
	save     func(*entity.BudgetSettings)
}

func openTestDatabase(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{Driver: db.DriverSQLite, URL: ":memory:", MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	database := openTestDatabase(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	user := entity.NewUser("ana@example.com", "Ana", "hash", now)
	if err := persistence.NewUserRepository(database.DB()).Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	transactionRepo := persistence.NewTransactionRepository(database.DB())
	for _, tx := range []*entity.Transaction{
		entity.NewTransaction(user.ID, 50, "Market", "groceries", now.AddDate(0, 0, -2), true),
		entity.NewTransaction(user.ID, 25, "Dinner", "restaurants", now.AddDate(0, 0, -1), true),
		entity.NewTransaction(user.ID, 100, "Refund", "other", now.AddDate(0, 0, -3), false),
	} {
		if err := transactionRepo.Create(ctx, tx); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}

	settingsRepo := persistence.NewSettingsRepository(database.DB())
	settings := entity.NewBudgetSettings(user.ID, 10, entity.BudgetPeriodMonthly, "USD")
	save := func(s *entity.BudgetSettings) {
		if err := settingsRepo.Save(ctx, s); err != nil {
			t.Fatalf("failed to save settings: %v", err)
		}
	}
	save(settings)

	opts := dashboard.Options{Clock: func() time.Time { return now }}
	c := NewDashboardController(
		dashboard.NewGetOverviewUseCase(transactionRepo, settingsRepo, opts),
		dashboard.NewGetAnalysisUseCase(transactionRepo, settingsRepo, opts),
	)

	r := gin.New()
	authed := r.Group("/", func(ctx *gin.Context) {
		ctx.Set(string(middleware.UserIDKey), user.ID)
	})
	authed.GET("/dashboard", c.GetOverview)
	authed.GET("/analysis", c.GetAnalysis)
	r.GET("/anonymous/dashboard", c.GetOverview)

	return &dashboardFixture{router: r, userID: user.ID, settings: settings, save: save}
}

func (f *dashboardFixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestDashboardController_GetOverview(t *testing.T) {
	f := newDashboardFixture(t)

	t.Run("returns the overview", func(t *testing.T) {
		w := f.get("/dashboard")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response dto.OverviewResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Budget != "300.00" {
			t.Errorf("expected budget 300.00, got %s", response.Budget)
		}
		if response.TotalSpent != "75.00" {
			t.Errorf("expected spent 75.00, got %s", response.TotalSpent)
		}
		if response.Remaining != "325.00" {
			t.Errorf("expected remaining 325.00, got %s", response.Remaining)
		}
		if response.PercentUtilization != 25 {
			t.Errorf("expected utilization 25, got %v", response.PercentUtilization)
		}
	})

	t.Run("requires an authenticated user", func(t *testing.T) {
		w := f.get("/anonymous/dashboard")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestDashboardController_GetAnalysis(t *testing.T) {
	f := newDashboardFixture(t)

	decodeError := func(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
		t.Helper()
		var response dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode error: %v", err)
		}
		return response
	}

	t.Run("premium is required", func(t *testing.T) {
		w := f.get("/analysis?type=monthly_trends&timeFrame=week")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if code := decodeError(t, w).Code; code != string(domainerror.ErrCodePremiumRequired) {
			t.Errorf("expected %s, got %s", domainerror.ErrCodePremiumRequired, code)
		}
	})

	f.settings.IsSubscribed = true
	f.save(f.settings)

	t.Run("invalid parameters", func(t *testing.T) {
		tests := []struct {
			name string
			path string
			code string
		}{
			{"unknown time frame", "/analysis?type=monthly_trends&timeFrame=decade", string(domainerror.ErrCodeInvalidTimeFrame)},
			{"non-numeric topN", "/analysis?type=category_analysis&timeFrame=month&topN=abc", string(domainerror.ErrCodeInvalidTopN)},
			{"zero topN", "/analysis?type=category_analysis&timeFrame=month&topN=0", string(domainerror.ErrCodeInvalidTopN)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := f.get(tt.path)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
				if code := decodeError(t, w).Code; code != tt.code {
					t.Errorf("expected %s, got %s", tt.code, code)
				}
			})
		}
	})

	t.Run("budget versus actual", func(t *testing.T) {
		w := f.get("/analysis?type=budget_vs_actual&timeFrame=month")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response dto.AnalysisResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.BudgetVsActual == nil {
			t.Fatal("expected a budget_vs_actual section")
		}
		if response.BudgetVsActual.Actual != "75.00" {
			t.Errorf("expected actual 75.00, got %s", response.BudgetVsActual.Actual)
		}
		if response.Trends != nil || response.Categories != nil {
			t.Error("expected only one section")
		}
	})
}
