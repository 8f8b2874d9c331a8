package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// Clock returns the current instant.
type Clock func() time.Time

// Options configure the dashboard use cases.
type Options struct {
	Taxonomy    *entity.Taxonomy
	Defaults    entity.BudgetDefaults
	Location    *time.Location
	Adjustment  BudgetAdjustment
	TopN        int
	RecentLimit int
	Clock       Clock
}

func (o Options) withDefaults() Options {
	if o.Taxonomy == nil {
		o.Taxonomy = entity.DefaultTaxonomy()
	}
	if o.Defaults == (entity.BudgetDefaults{}) {
		o.Defaults = entity.StandardBudgetDefaults()
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Adjustment == "" {
		o.Adjustment = BudgetAdjustmentCalendar
	}
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.RecentLimit <= 0 {
		o.RecentLimit = DefaultRecentLimit
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

func (o Options) now() time.Time {
	return o.Clock().In(o.Location)
}

// snapshot is a consistent read of one user's settings and transactions.
type snapshot struct {
	settings     *entity.BudgetSettings
	transactions []*entity.Transaction
}

// snapshotLoader reads settings and transactions concurrently.
type snapshotLoader struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	defaults        entity.BudgetDefaults
}

// load fetches the user's settings and either every transaction or, when window is set,
// only those dated within it. Missing settings fall back to defaults.
func (l snapshotLoader) load(ctx context.Context, userID uuid.UUID, window *[2]time.Time) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		settings, err := l.settingsRepo.FindByUserID(gctx, userID)
		if errors.Is(err, domainerror.ErrSettingsNotFound) {
			snap.settings = l.defaults.NewSettings(userID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		snap.settings = settings
		return nil
	})

	g.Go(func() error {
		var (
			txs []*entity.Transaction
			err error
		)
		if window != nil {
			txs, err = l.transactionRepo.FindByUserInRange(gctx, userID, window[0], window[1])
		} else {
			txs, err = l.transactionRepo.FindAllByUser(gctx, userID)
		}
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		snap.transactions = txs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
