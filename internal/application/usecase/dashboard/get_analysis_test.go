package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions []*entity.Transaction
	err          error
	rangeStart   time.Time
	rangeEnd     time.Time
	rangeCalls   int
	allCalls     int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (f *fakeTransactionRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	return f.transactions, f.err
}

func (f *fakeTransactionRepo) FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rangeCalls++
	f.rangeStart, f.rangeEnd = start, end
	return f.transactions, f.err
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeTransactionRepo) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeSettingsRepo struct {
	settings *entity.BudgetSettings
	err      error
}

func (f *fakeSettingsRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BudgetSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return nil, domainerror.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.BudgetSettings) error {
	f.settings = settings
	return nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestGetAnalysisUseCase(t *testing.T) {
	now := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	premium := entity.NewBudgetSettings(userID, 10, entity.BudgetPeriodMonthly, "EUR")
	premium.IsSubscribed = true

	t.Run("runs the analysis over the window for premium users", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			expense(100, "food", now),
			expense(40, "transportation", now.AddDate(0, 0, -1)),
		}}
		uc := NewGetAnalysisUseCase(txRepo, &fakeSettingsRepo{settings: premium}, Options{Clock: fixedClock(now)})

		output, err := uc.Execute(context.Background(), GetAnalysisInput{
			UserID:    userID,
			Type:      "budget_vs_actual",
			TimeFrame: "week",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Currency != "EUR" {
			t.Errorf("expected EUR, got %s", output.Currency)
		}
		if output.Result.BudgetVsActual.Budget != 70 {
			t.Errorf("expected budget 70, got %v", output.Result.BudgetVsActual.Budget)
		}
		if output.Result.BudgetVsActual.Actual != 140 {
			t.Errorf("expected actual 140, got %v", output.Result.BudgetVsActual.Actual)
		}
		if txRepo.rangeCalls != 1 || txRepo.allCalls != 0 {
			t.Errorf("expected one range query, got %d range and %d full", txRepo.rangeCalls, txRepo.allCalls)
		}
		if !txRepo.rangeStart.Equal(now.AddDate(0, 0, -7)) || !txRepo.rangeEnd.Equal(now) {
			t.Errorf("unexpected range %v - %v", txRepo.rangeStart, txRepo.rangeEnd)
		}
	})

	t.Run("defaults to the month time frame", func(t *testing.T) {
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{}, &fakeSettingsRepo{settings: premium}, Options{Clock: fixedClock(now)})

		output, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID, Type: "monthly_trends"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Result.TimeFrame != entity.TimeFrameMonth {
			t.Errorf("expected month, got %s", output.Result.TimeFrame)
		}
		if len(output.Result.Trends.Points) != 4 {
			t.Errorf("expected 4 points, got %d", len(output.Result.Trends.Points))
		}
	})

	t.Run("unknown category resolves to the fallback", func(t *testing.T) {
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{}, &fakeSettingsRepo{settings: premium}, Options{Clock: fixedClock(now)})

		output, err := uc.Execute(context.Background(), GetAnalysisInput{
			UserID:   userID,
			Type:     "category_analysis",
			Category: "nonexistent",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Result.Categories.Selected == nil || *output.Result.Categories.Selected != entity.CategoryOther {
			t.Errorf("expected other, got %v", output.Result.Categories.Selected)
		}
		if len(output.Result.Categories.SelectedTrend) != 0 {
			t.Errorf("expected empty trend, got %d points", len(output.Result.Categories.SelectedTrend))
		}
	})

	t.Run("requires premium", func(t *testing.T) {
		free := entity.NewBudgetSettings(userID, 10, entity.BudgetPeriodMonthly, "USD")
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{}, &fakeSettingsRepo{settings: free}, Options{Clock: fixedClock(now)})

		_, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID, Type: "monthly_trends"})
		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) {
			t.Fatalf("expected SettingsError, got %v", err)
		}
		if settingsErr.Code != domainerror.ErrCodePremiumRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePremiumRequired, settingsErr.Code)
		}
	})

	t.Run("missing settings fall back to free defaults", func(t *testing.T) {
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{}, &fakeSettingsRepo{}, Options{Clock: fixedClock(now)})

		_, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID, Type: "monthly_trends"})
		if !errors.Is(err, domainerror.ErrPremiumRequired) {
			t.Errorf("expected ErrPremiumRequired, got %v", err)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{}, &fakeSettingsRepo{settings: premium}, Options{Clock: fixedClock(now)})

		tests := []struct {
			name     string
			input    GetAnalysisInput
			expected domainerror.AnalysisErrorCode
		}{
			{"unknown type", GetAnalysisInput{Type: "forecast"}, domainerror.ErrCodeInvalidAnalysisType},
			{"unknown time frame", GetAnalysisInput{Type: "monthly_trends", TimeFrame: "decade"}, domainerror.ErrCodeInvalidTimeFrame},
			{"negative top n", GetAnalysisInput{Type: "category_analysis", TopN: -1}, domainerror.ErrCodeInvalidTopN},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.input)
				var analysisErr *domainerror.AnalysisError
				if !errors.As(err, &analysisErr) {
					t.Fatalf("expected AnalysisError, got %v", err)
				}
				if analysisErr.Code != tt.expected {
					t.Errorf("expected code %s, got %s", tt.expected, analysisErr.Code)
				}
			})
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := NewGetAnalysisUseCase(&fakeTransactionRepo{err: repoErr}, &fakeSettingsRepo{settings: premium}, Options{Clock: fixedClock(now)})

		_, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID, Type: "monthly_trends"})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected repository error, got %v", err)
		}
	})
}

func TestGetOverviewUseCase(t *testing.T) {
	now := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		expense(100, "food", now.AddDate(-1, 0, 0)),
		expense(50, "housing", now),
	}}
	uc := NewGetOverviewUseCase(txRepo, &fakeSettingsRepo{}, Options{Clock: fixedClock(now)})

	output, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if txRepo.allCalls != 1 {
		t.Errorf("expected a full read, got %d", txRepo.allCalls)
	}
	if output.Settings.Currency != entity.DefaultCurrency {
		t.Errorf("expected default currency, got %s", output.Settings.Currency)
	}
	if output.Overview.TotalSpent != 150 {
		t.Errorf("expected 150 spent across all time, got %v", output.Overview.TotalSpent)
	}
	if output.Overview.Period != entity.BudgetPeriodMonthly {
		t.Errorf("expected monthly, got %s", output.Overview.Period)
	}
}
