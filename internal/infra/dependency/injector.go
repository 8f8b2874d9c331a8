// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/application/usecase/auth"
	"github.com/budget-planner/backend/internal/application/usecase/category"
	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/application/usecase/settings"
	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/infra/server/router"
	"github.com/budget-planner/backend/internal/integration/adapters"
	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// Option customizes the injector.
type Option func(*dashboard.Options)

// WithClock overrides the clock used by the dashboard and analysis engine.
func WithClock(clock dashboard.Clock) Option {
	return func(o *dashboard.Options) {
		o.Clock = clock
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) *Injector {
	taxonomy := entity.DefaultTaxonomy()
	defaults := BudgetDefaults(cfg.Budget)
	engineOpts := dashboard.Options{
		Taxonomy:    taxonomy,
		Defaults:    defaults,
		Location:    cfg.Budget.Location(),
		Adjustment:  dashboard.ParseBudgetAdjustment(cfg.Budget.Adjustment),
		TopN:        cfg.Budget.TopN,
		RecentLimit: cfg.Budget.RecentLimit,
	}
	for _, opt := range opts {
		opt(&engineOpts)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	suggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if !suggester.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, category suggestions fall back to other")
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, settingsRepo, passwordService, tokenService, defaults)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, settingsRepo, passwordService, tokenService, defaults)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, settingsRepo, tokenService, defaults)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(taxonomy)
	suggestCategoryUseCase := category.NewSuggestCategoryUseCase(suggester, taxonomy, cfg.AI.SuggestionTimeout)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, taxonomy)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, taxonomy)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, taxonomy)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportUseCases := map[string]*transaction.ExportTransactionsUseCase{
		"csv":  transaction.NewExportTransactionsUseCase(transactionRepo, adapters.NewCSVCodec()),
		"json": transaction.NewExportTransactionsUseCase(transactionRepo, adapters.NewJSONCodec()),
	}

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo, defaults)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, defaults)
	updateSubscriptionUseCase := settings.NewUpdateSubscriptionUseCase(settingsRepo, defaults)
	resetDataUseCase := settings.NewResetDataUseCase(transactionRepo, settingsRepo, defaults)

	// Create dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, settingsRepo, engineOpts)
	getAnalysisUseCase := dashboard.NewGetAnalysisUseCase(transactionRepo, settingsRepo, engineOpts)

	// Create controllers
	healthChecks := map[string]controller.HealthCheck{
		"database": func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
	}
	if redisClient != nil {
		healthChecks["redis"] = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(healthChecks)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		suggestCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportUseCases,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		updateSubscriptionUseCase,
		resetDataUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getOverviewUseCase,
		getAnalysisUseCase,
	)

	// Create middleware
	var store middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
	if redisClient != nil {
		store = middleware.NewRedisRateLimitStore(redisClient)
	}
	authRateLimiter := middleware.NewRateLimiterWithConfig(store, "auth", cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		settingsController,
		dashboardController,
		authRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// BudgetDefaults converts the budget configuration into defaults for new settings.
// An unknown period falls back to monthly.
func BudgetDefaults(cfg config.BudgetConfig) entity.BudgetDefaults {
	defaults := entity.StandardBudgetDefaults()
	if cfg.DefaultDailyAmount > 0 {
		defaults.DailyAmount = cfg.DefaultDailyAmount
	}
	if period, ok := entity.ParseBudgetPeriod(cfg.DefaultPeriod); ok {
		defaults.Period = period
	}
	if cfg.DefaultCurrency != "" {
		defaults.Currency = cfg.DefaultCurrency
	}
	return defaults
}
