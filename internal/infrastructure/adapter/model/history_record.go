package model

import (
	"time"
)

// HistoryRecord is a completed session
type HistoryRecord struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Email         string    `gorm:"not null;size:320;index:idx_history_records_email"`
	SessionNumber int       `gorm:"not null"`
	CorrectCount  int       `gorm:"not null"`
	MaxCount      int       `gorm:"not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// TableName specifies the table name for HistoryRecord
func (HistoryRecord) TableName() string {
	return "history_records"
}
