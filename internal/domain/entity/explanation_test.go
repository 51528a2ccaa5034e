package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	t.Run("Every account type has both explanations", func(t *testing.T) {
		types := []AccountType{
			AccountTypeAsset,
			AccountTypeLiability,
			AccountTypeEquity,
			AccountTypeRevenue,
			AccountTypeExpense,
		}

		for _, accountType := range types {
			primary, secondary := Explain("Cash", accountType)
			assert.Contains(t, primary, "Cash", "type %s", accountType)
			assert.Contains(t, secondary, "Cash", "type %s", accountType)
			assert.NotEqual(t, primary, secondary)
		}
	})

	t.Run("Asset wording", func(t *testing.T) {
		primary, secondary := Explain("Equipment", AccountTypeAsset)
		assert.Equal(t, "Equipment is an asset: increases with Debit, decreases with Credit.", primary)
		assert.Equal(t, "Equipment ay ari-arian: tumataas sa Debit, bumababa sa Credit.", secondary)
	})

	t.Run("Unknown type yields empty explanations", func(t *testing.T) {
		primary, secondary := Explain("Suspense", AccountType("Contra"))
		assert.Empty(t, primary)
		assert.Empty(t, secondary)
	})

	t.Run("Same pair always explains the same way", func(t *testing.T) {
		p1, s1 := Explain("Unearned Revenue", AccountTypeLiability)
		p2, s2 := Explain("Unearned Revenue", AccountTypeLiability)
		assert.Equal(t, p1, p2)
		assert.Equal(t, s1, s2)
	})
}

func TestNewTransactionRecord(t *testing.T) {
	tmpl := Template{
		Pattern:    "Paid {amt} cash for rent",
		Account:    "Rent Expense",
		Type:       AccountTypeExpense,
		Statement:  StatementIncomeStatement,
		Difficulty: DifficultyEasy,
	}

	record := NewTransactionRecord(42, tmpl, "Paid ₱1,200 cash for rent", 1200)

	assert.Equal(t, 42, record.ID)
	assert.Equal(t, "Paid ₱1,200 cash for rent", record.Description)
	assert.Equal(t, 1200, record.Amount)
	assert.Equal(t, "Rent Expense", record.Account)
	assert.Equal(t, AccountTypeExpense, record.AccountType)
	assert.Equal(t, StatementIncomeStatement, record.StatementCategory)
	assert.Equal(t, DifficultyEasy, record.Difficulty)

	primary, secondary := Explain("Rent Expense", AccountTypeExpense)
	assert.Equal(t, primary, record.ExplanationPrimary)
	assert.Equal(t, secondary, record.ExplanationSecondary)
}
