package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
)

// HistoryRecord is appended every time a user completes a session
type HistoryRecord struct {
	Email         string    `json:"email"`
	SessionNumber int       `json:"sessionNumber"`
	CorrectCount  int       `json:"correctCount"`
	MaxCount      int       `json:"maxCount"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewHistoryRecord validates a completion score and stamps it
func NewHistoryRecord(email string, sessionNumber, correct, max int, at time.Time) (*HistoryRecord, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrInvalidRequest
	}
	if max <= 0 || correct < 0 || correct > max {
		return nil, errs.ErrInvalidScore
	}

	return &HistoryRecord{
		Email:         email,
		SessionNumber: sessionNumber,
		CorrectCount:  correct,
		MaxCount:      max,
		Timestamp:     at.UTC(),
	}, nil
}
