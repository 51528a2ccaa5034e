package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
)

var _ usecase.PoolUseCase = (*Service)(nil)

// Service generates the question pool once and serves it afterwards
type Service struct {
	repo         persistence.QuestionSetRepository
	rng          coreport.RandomSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sessionSize  int

	mu     sync.RWMutex
	cached *entity.QuestionSet
}

// NewService creates a new pool Service
func NewService(
	repo persistence.QuestionSetRepository,
	rng coreport.RandomSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	sessionSize int,
) (*Service, error) {
	if sessionSize <= 0 {
		return nil, errs.ErrInvalidSessionSize
	}

	return &Service{
		repo:         repo,
		rng:          rng,
		timeProvider: timeProvider,
		logger:       logger,
		sessionSize:  sessionSize,
	}, nil
}

// InitializePool reuses a persisted set verbatim or generates and saves a new one.
// The boolean is true only when this call wrote the set.
func (s *Service) InitializePool(ctx context.Context) (*entity.QuestionSet, bool, error) {
	existing, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.logger.Info("Question pool already present", map[string]any{
			"poolSize":    len(existing.Pool),
			"sessions":    existing.SessionCount(),
			"generatedAt": existing.GeneratedAt.Format(time.RFC3339Nano),
		})
		s.remember(existing)
		return existing, false, nil
	case !errors.Is(err, errs.ErrPoolNotGenerated):
		s.logger.Error("Failed to load question pool", map[string]any{
			"error": err.Error(),
		})
		return nil, false, fmt.Errorf("load question set: %w", err)
	}

	start := s.timeProvider.Now()
	set, err := s.BuildQuestionSet()
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.Save(ctx, set); err != nil {
		if !errors.Is(err, errs.ErrPoolAlreadyExists) {
			s.logger.Error("Failed to save question pool", map[string]any{
				"error": err.Error(),
			})
			return nil, false, fmt.Errorf("save question set: %w", err)
		}

		// Another initializer won; the stored set is authoritative
		s.logger.Warn("Question pool saved concurrently, reloading", nil)
		stored, loadErr := s.repo.Load(ctx)
		if loadErr != nil {
			return nil, false, fmt.Errorf("reload question set: %w", loadErr)
		}
		s.remember(stored)
		return stored, false, nil
	}

	s.logger.Info("Question pool generated", map[string]any{
		"poolSize":    len(set.Pool),
		"sessions":    set.SessionCount(),
		"sessionSize": s.sessionSize,
		"durationMs":  s.timeProvider.Since(start).Std().Milliseconds(),
	})
	s.remember(set)
	return set, true, nil
}

// BuildQuestionSet generates a pool and its partition without persisting it
func (s *Service) BuildQuestionSet() (*entity.QuestionSet, error) {
	records := GeneratePool(s.rng)
	ids := RecordIDs(records)

	sessions, err := Partition(ids, s.sessionSize)
	if err != nil {
		return nil, err
	}

	return &entity.QuestionSet{
		Pool:        records,
		IDs:         ids,
		Sessions:    sessions,
		GeneratedAt: s.timeProvider.Now().UTC().Truncate(time.Millisecond),
	}, nil
}

// GetQuestionSet returns the persisted set
func (s *Service) GetQuestionSet(ctx context.Context) (*entity.QuestionSet, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(set)
	return set, nil
}

// GetPool returns every record in generation order
func (s *Service) GetPool(ctx context.Context) ([]entity.TransactionRecord, error) {
	set, err := s.GetQuestionSet(ctx)
	if err != nil {
		return nil, err
	}
	return set.Pool, nil
}

// remember caches the set; a persisted set is immutable
func (s *Service) remember(set *entity.QuestionSet) {
	s.mu.Lock()
	s.cached = set
	s.mu.Unlock()
}
