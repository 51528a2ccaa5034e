package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

// IndexManager creates the indexes the store's read paths rely on
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

var indexStatements = []struct {
	name string
	sql  string
}{
	{
		name: "idx_pool_records_position",
		sql:  "CREATE UNIQUE INDEX IF NOT EXISTS idx_pool_records_position ON pool_records (set_id, position)",
	},
	{
		name: "idx_session_items_record",
		sql:  "CREATE INDEX IF NOT EXISTS idx_session_items_record ON session_items (set_id, record_id)",
	},
	{
		name: "idx_history_records_email_id",
		sql:  "CREATE INDEX IF NOT EXISTS idx_history_records_email_id ON history_records (email, id)",
	},
}

// CreateIndexes creates every index idempotently
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	for _, stmt := range indexStatements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}
