package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/model"
)

func sampleQuestionSet() *entity.QuestionSet {
	rent := entity.Template{
		Pattern:    "Paid {amt} cash for rent",
		Account:    "Rent Expense",
		Type:       entity.AccountTypeExpense,
		Statement:  entity.StatementIncomeStatement,
		Difficulty: entity.DifficultyEasy,
	}
	note := entity.Template{
		Pattern:    "Accrued interest payable {amt}",
		Account:    "Interest Payable",
		Type:       entity.AccountTypeLiability,
		Statement:  entity.StatementBalanceSheet,
		Difficulty: entity.DifficultyHard,
	}

	return &entity.QuestionSet{
		Pool: []entity.TransactionRecord{
			entity.NewTransactionRecord(1, rent, "Paid ₱1,200 cash for rent", 1200),
			entity.NewTransactionRecord(2, rent, "Paid ₱900 cash for rent", 900),
			entity.NewTransactionRecord(3, note, "Accrued interest payable ₱45,000", 45000),
		},
		IDs:         []int{1, 2, 3},
		Sessions:    [][]int{{1, 2}, {3}},
		GeneratedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestQuestionSetMapping(t *testing.T) {
	set := sampleQuestionSet()

	header := questionSetToModel(set)

	assert.Equal(t, model.SingletonSetID, header.ID)
	assert.Equal(t, 2, header.SessionCount)
	require.Len(t, header.Records, 3)
	assert.Equal(t, 2, header.Records[2].Position)
	assert.Equal(t, "Liability", header.Records[2].AccountType)
	require.Len(t, header.Sessions, 3)
	assert.Equal(t, model.SessionItem{SetID: 1, SessionNumber: 1, Position: 0, RecordID: 3}, header.Sessions[2])

	restored := modelToQuestionSet(&header)
	assert.Equal(t, set, restored)
}

func TestModelToQuestionSetKeepsEmptySessions(t *testing.T) {
	header := model.QuestionSet{
		ID:           model.SingletonSetID,
		SessionCount: 2,
		Sessions: []model.SessionItem{
			{SetID: 1, SessionNumber: 0, Position: 0, RecordID: 7},
			{SetID: 1, SessionNumber: 9, Position: 0, RecordID: 8},
		},
	}

	set := modelToQuestionSet(&header)

	assert.Equal(t, [][]int{{7}, {}}, set.Sessions)
	assert.Empty(t, set.Pool)
	assert.NotNil(t, set.IDs)
}
