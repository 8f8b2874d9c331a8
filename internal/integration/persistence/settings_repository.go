package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUserID retrieves the settings row of a user.
func (r *settingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BudgetSettings, error) {
	var settingsModel model.BudgetSettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save upserts the settings row keyed by user.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.BudgetSettings) error {
	settingsModel := model.SettingsFromEntity(settings)
	settingsModel.UpdatedAt = time.Now().UTC()
	if settingsModel.CreatedAt.IsZero() {
		settingsModel.CreatedAt = settingsModel.UpdatedAt
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"daily_budget_amount",
				"budget_period",
				"currency",
				"has_completed_onboarding",
				"is_subscribed",
				"has_lifetime_access",
				"updated_at",
			}),
		}).
		Create(settingsModel)
	return result.Error
}
