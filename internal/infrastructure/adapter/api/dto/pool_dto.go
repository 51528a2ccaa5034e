package dto

import (
	"time"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
)

// PoolResponse is returned by GET /api/pool
type PoolResponse struct {
	Pool []entity.TransactionRecord `json:"pool"`
}

// QuestionSetDTO mirrors the persisted sets document
type QuestionSetDTO struct {
	Pool        []entity.TransactionRecord `json:"pool"`
	IDs         []int                      `json:"ids"`
	Sessions    [][]int                    `json:"sessions"`
	GeneratedAt string                     `json:"generatedAt"`
}

// SetsResponse is returned by GET /api/sets
type SetsResponse struct {
	Sets QuestionSetDTO `json:"sets"`
}

// NewSetsResponse converts a question set for the wire
func NewSetsResponse(set *entity.QuestionSet) SetsResponse {
	return SetsResponse{
		Sets: QuestionSetDTO{
			Pool:        set.Pool,
			IDs:         set.IDs,
			Sessions:    set.Sessions,
			GeneratedAt: set.GeneratedAt.UTC().Format(time.RFC3339Nano),
		},
	}
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
}
