package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/infra/db"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

var (
	dbOnce  sync.Once
	suiteDb *Db
)

// Db is the shared in-memory database behind the feature suite. Every model in
// model.All is migrated once and emptied before each scenario.
type Db struct {
	DbConn *gorm.DB
	models []any
	tables map[string]any
}

// NewDb returns the suite database, opening it through the sqlite driver of
// the production connection code on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		database, err := db.NewConnection(&config.DatabaseConfig{
			Driver:       db.DriverSQLite,
			URL:          "file::memory:?cache=shared",
			MaxIdleConns: 1,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to open test database: %v", err))
		}
		if err := database.AutoMigrate(model.All()...); err != nil {
			panic(fmt.Sprintf("failed to migrate test database: %v", err))
		}
		suiteDb = newDb(database.DB(), model.All())
	})
	return suiteDb
}

func newDb(conn *gorm.DB, models []any) *Db {
	tables := make(map[string]any, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: conn}
		if err := stmt.Parse(m); err != nil {
			panic(fmt.Sprintf("failed to parse model %T: %v", m, err))
		}
		tables[stmt.Schema.Table] = m
	}
	return &Db{DbConn: conn, models: models, tables: tables}
}

// ClearDB deletes every row, children before parents so foreign keys hold.
func (d *Db) ClearDB() error {
	session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
	for i := len(d.models) - 1; i >= 0; i-- {
		if err := session.Delete(d.models[i]).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", d.models[i], err)
		}
	}
	return nil
}

// Count returns the number of rows in table whose columns equal criteria.
func (d *Db) Count(table string, criteria map[string]any) (int64, error) {
	m, ok := d.tables[table]
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	query := d.DbConn.Unscoped().Model(m)
	for column, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
