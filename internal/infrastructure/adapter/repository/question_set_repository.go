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

var _ persistence.QuestionSetRepository = (*QuestionSetRepository)(nil)

// insertBatchSize keeps each INSERT well below postgres' bind parameter limit
const insertBatchSize = 250

// QuestionSetRepository stores the pool across question_sets, pool_records and session_items
type QuestionSetRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewQuestionSetRepository creates a new QuestionSetRepository
func NewQuestionSetRepository(db *gorm.DB, logger coreport.Logger) *QuestionSetRepository {
	return &QuestionSetRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// Load reassembles the set; records come back in generation order
func (r *QuestionSetRepository) Load(ctx context.Context) (*entity.QuestionSet, error) {
	var header model.QuestionSet
	err := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB { return db.Order("session_number, position") }).
		Take(&header, "id = ?", model.SingletonSetID).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, database.EntityTypeQuestionSet)
	}

	return modelToQuestionSet(&header), nil
}

// Save writes the header, records and session items in one transaction
func (r *QuestionSetRepository) Save(ctx context.Context, set *entity.QuestionSet) error {
	header := questionSetToModel(set)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records, sessions := header.Records, header.Sessions
		header.Records, header.Sessions = nil, nil

		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.CreateInBatches(records, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(sessions) > 0 {
			if err := tx.CreateInBatches(sessions, insertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return r.errorMapper.MapError(err, database.EntityTypeQuestionSet)
	}

	r.logger.Info("Question set stored", map[string]any{
		"records":  len(set.Pool),
		"sessions": len(set.Sessions),
	})
	return nil
}

func questionSetToModel(set *entity.QuestionSet) model.QuestionSet {
	header := model.QuestionSet{
		ID:           model.SingletonSetID,
		SessionCount: len(set.Sessions),
		GeneratedAt:  set.GeneratedAt.UTC(),
		Records:      make([]model.PoolRecord, 0, len(set.Pool)),
	}

	for i, record := range set.Pool {
		header.Records = append(header.Records, model.PoolRecord{
			SetID:             model.SingletonSetID,
			RecordID:          record.ID,
			Position:          i,
			Description:       record.Description,
			Amount:            record.Amount,
			Account:           record.Account,
			AccountType:       string(record.AccountType),
			StatementCategory: string(record.StatementCategory),
			Difficulty:        string(record.Difficulty),
			ExplanationEN:     record.ExplanationPrimary,
			ExplanationTL:     record.ExplanationSecondary,
		})
	}

	for n, ids := range set.Sessions {
		for position, id := range ids {
			header.Sessions = append(header.Sessions, model.SessionItem{
				SetID:         model.SingletonSetID,
				SessionNumber: n,
				Position:      position,
				RecordID:      id,
			})
		}
	}

	return header
}

func modelToQuestionSet(header *model.QuestionSet) *entity.QuestionSet {
	set := &entity.QuestionSet{
		Pool:        make([]entity.TransactionRecord, 0, len(header.Records)),
		IDs:         make([]int, 0, len(header.Records)),
		Sessions:    make([][]int, header.SessionCount),
		GeneratedAt: header.GeneratedAt.UTC(),
	}

	for _, record := range header.Records {
		set.Pool = append(set.Pool, entity.TransactionRecord{
			ID:                   record.RecordID,
			Description:          record.Description,
			Amount:               record.Amount,
			Account:              record.Account,
			AccountType:          entity.AccountType(record.AccountType),
			StatementCategory:    entity.StatementCategory(record.StatementCategory),
			Difficulty:           entity.Difficulty(record.Difficulty),
			ExplanationPrimary:   record.ExplanationEN,
			ExplanationSecondary: record.ExplanationTL,
		})
		set.IDs = append(set.IDs, record.RecordID)
	}

	for i := range set.Sessions {
		set.Sessions[i] = []int{}
	}
	for _, item := range header.Sessions {
		if item.SessionNumber >= 0 && item.SessionNumber < len(set.Sessions) {
			set.Sessions[item.SessionNumber] = append(set.Sessions[item.SessionNumber], item.RecordID)
		}
	}

	return set
}
