package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/model"
)

var _ persistence.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository appends completions to history_records
type HistoryRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// Append inserts one completion
func (r *HistoryRepository) Append(ctx context.Context, record *entity.HistoryRecord) error {
	row := model.HistoryRecord{
		Email:         record.Email,
		SessionNumber: record.SessionNumber,
		CorrectCount:  record.CorrectCount,
		MaxCount:      record.MaxCount,
		Timestamp:     record.Timestamp.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errorMapper.MapError(err, database.EntityTypeHistory)
	}
	return nil
}

// ListByEmail returns completions in insertion order
func (r *HistoryRepository) ListByEmail(ctx context.Context, email string) ([]entity.HistoryRecord, error) {
	var rows []model.HistoryRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("id").Find(&rows).Error; err != nil {
		return nil, r.errorMapper.MapError(err, database.EntityTypeHistory)
	}

	records := make([]entity.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.HistoryRecord{
			Email:         row.Email,
			SessionNumber: row.SessionNumber,
			CorrectCount:  row.CorrectCount,
			MaxCount:      row.MaxCount,
			Timestamp:     row.Timestamp.UTC(),
		})
	}
	return records, nil
}
