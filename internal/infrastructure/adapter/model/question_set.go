package model

import (
	"time"
)

// SingletonSetID is the only key a question set row may have
const SingletonSetID uint = 1

// QuestionSet is the header row of the generated pool
type QuestionSet struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false;check:question_sets_singleton,id = 1"`
	SessionCount int       `gorm:"not null"`
	GeneratedAt  time.Time `gorm:"not null"`

	Records  []PoolRecord  `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
	Sessions []SessionItem `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for QuestionSet
func (QuestionSet) TableName() string {
	return "question_sets"
}

// PoolRecord is one generated transaction record
type PoolRecord struct {
	SetID             uint   `gorm:"primaryKey;autoIncrement:false"`
	RecordID          int    `gorm:"primaryKey;autoIncrement:false"`
	Position          int    `gorm:"not null"`
	Description       string `gorm:"type:text;not null"`
	Amount            int    `gorm:"not null"`
	Account           string `gorm:"not null;size:100"`
	AccountType       string `gorm:"not null;size:20"`
	StatementCategory string `gorm:"not null;size:30"`
	Difficulty        string `gorm:"not null;size:20"`
	ExplanationEN     string `gorm:"column:explanation_en;type:text"`
	ExplanationTL     string `gorm:"column:explanation_tl;type:text"`
}

// TableName specifies the table name for PoolRecord
func (PoolRecord) TableName() string {
	return "pool_records"
}

// SessionItem places a record id at a position within a session
type SessionItem struct {
	SetID         uint `gorm:"primaryKey;autoIncrement:false"`
	SessionNumber int  `gorm:"primaryKey;autoIncrement:false"`
	Position      int  `gorm:"primaryKey;autoIncrement:false"`
	RecordID      int  `gorm:"not null"`
}

// TableName specifies the table name for SessionItem
func (SessionItem) TableName() string {
	return "session_items"
}
