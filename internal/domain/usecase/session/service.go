package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
)

// QuestionSetProvider supplies the generated question set
type QuestionSetProvider interface {
	GetQuestionSet(ctx context.Context) (*entity.QuestionSet, error)
}

var _ usecase.SessionUseCase = (*Service)(nil)

// Service serves session batches and records completions
type Service struct {
	questions    QuestionSetProvider
	userRepo     persistence.UserRepository
	historyRepo  persistence.HistoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new session Service
func NewService(
	questions QuestionSetProvider,
	userRepo persistence.UserRepository,
	historyRepo persistence.HistoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		questions:    questions,
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetSession returns the records of session n in stored order
func (s *Service) GetSession(ctx context.Context, n int) ([]entity.TransactionRecord, error) {
	set, err := s.questions.GetQuestionSet(ctx)
	if err != nil {
		return nil, err
	}

	items, err := set.SessionItems(n)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSessionIndex) {
			return nil, errs.NewSessionError(n, set.SessionCount(), "", err)
		}
		s.logger.Error("Session references a missing record", map[string]any{
			"session": n,
			"error":   err.Error(),
		})
		return nil, err
	}

	return items, nil
}

// CompleteSession validates a finished round and appends it to the user's history
func (s *Service) CompleteSession(ctx context.Context, n int, req usecase.CompletionRequest) (*entity.HistoryRecord, error) {
	set, err := s.questions.GetQuestionSet(ctx)
	if err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(req.Email)
	if !set.HasSession(n) {
		return nil, errs.NewSessionError(n, set.SessionCount(), email, errs.ErrInvalidSessionIndex)
	}
	if email == "" {
		return nil, errs.ErrInvalidRequest
	}
	// A round cannot report more questions than the session delivered
	if req.Max > len(set.Sessions[n]) {
		return nil, errs.NewSessionError(n, set.SessionCount(), email, errs.ErrInvalidScore)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewSessionError(n, set.SessionCount(), email, err)
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	record, err := entity.NewHistoryRecord(email, n, req.Correct, req.Max, s.timeProvider.Now().Truncate(time.Millisecond))
	if err != nil {
		return nil, errs.NewSessionError(n, set.SessionCount(), email, err)
	}

	if err := s.historyRepo.Append(ctx, record); err != nil {
		s.logger.Error("Failed to record session completion", map[string]any{
			"email":   email,
			"session": n,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("append history: %w", err)
	}

	s.logger.Info("Session completed", map[string]any{
		"email":   email,
		"session": n,
		"correct": req.Correct,
		"max":     req.Max,
	})

	return record, nil
}

// GetHistory lists a user's completed sessions in the order they were recorded
func (s *Service) GetHistory(ctx context.Context, email string) ([]entity.HistoryRecord, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrInvalidRequest
	}

	records, err := s.historyRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.HistoryRecord{}
	}
	return records, nil
}
