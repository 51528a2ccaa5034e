package dto

import (
	"time"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// SessionResponse is returned by GET /api/session/:n
type SessionResponse struct {
	OK    bool                       `json:"ok"`
	Items []entity.TransactionRecord `json:"items"`
}

// CompleteSessionRequest is the body of POST /api/session/:n/complete.
// Pointers let a zero score pass the required check.
type CompleteSessionRequest struct {
	Email   string `json:"email" binding:"required"`
	Correct *int   `json:"correct" binding:"required"`
	Max     *int   `json:"max" binding:"required"`
}

// OKResponse is the bare success acknowledgement
type OKResponse struct {
	OK bool `json:"ok"`
}

// HistoryItem is one completion as sent to clients
type HistoryItem struct {
	Email         string `json:"email"`
	SessionNumber int    `json:"sessionNumber"`
	CorrectCount  int    `json:"correctCount"`
	MaxCount      int    `json:"maxCount"`
	Timestamp     string `json:"timestamp"`
}

// HistoryResponse is returned by GET /api/history
type HistoryResponse struct {
	OK      bool          `json:"ok"`
	History []HistoryItem `json:"history"`
}

// NewHistoryResponse converts history records for the wire
func NewHistoryResponse(records []entity.HistoryRecord) HistoryResponse {
	items := make([]HistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, HistoryItem{
			Email:         record.Email,
			SessionNumber: record.SessionNumber,
			CorrectCount:  record.CorrectCount,
			MaxCount:      record.MaxCount,
			Timestamp:     record.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return HistoryResponse{OK: true, History: items}
}
