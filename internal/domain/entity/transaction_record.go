package entity

// Difficulty is the quiz tier a record was stamped from
type Difficulty string

// Difficulty tiers
const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// AccountType classifies the account a transaction posts to
type AccountType string

// Account types
const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// StatementCategory is the financial statement the account is reported on
type StatementCategory string

// Statement categories
const (
	StatementBalanceSheet    StatementCategory = "Balance Sheet"
	StatementIncomeStatement StatementCategory = "Income Statement"
	StatementOwnersEquity    StatementCategory = "Owner's Equity"
)

// Template stamps out transaction records of one kind.
// Pattern holds an {amt} placeholder and optionally secondary ones
// ({cash}, {onAcc}, {earned}, {interest}, {principal}).
type Template struct {
	Pattern    string
	Account    string
	Type       AccountType
	Statement  StatementCategory
	Difficulty Difficulty
}

// TransactionRecord is one synthetic bookkeeping event in the question pool.
// JSON names match the wire format existing quiz clients read.
type TransactionRecord struct {
	ID                   int               `json:"id"`
	Description          string            `json:"desc"`
	Amount               int               `json:"amount"`
	Account              string            `json:"account"`
	AccountType          AccountType       `json:"type"`
	StatementCategory    StatementCategory `json:"statement"`
	Difficulty           Difficulty        `json:"difficulty"`
	ExplanationPrimary   string            `json:"explanation_en"`
	ExplanationSecondary string            `json:"explanation_tl"`
}

// NewTransactionRecord builds a record from a template with the description already filled in
func NewTransactionRecord(id int, tmpl Template, description string, amount int) TransactionRecord {
	primary, secondary := Explain(tmpl.Account, tmpl.Type)
	return TransactionRecord{
		ID:                   id,
		Description:          description,
		Amount:               amount,
		Account:              tmpl.Account,
		AccountType:          tmpl.Type,
		StatementCategory:    tmpl.Statement,
		Difficulty:           tmpl.Difficulty,
		ExplanationPrimary:   primary,
		ExplanationSecondary: secondary,
	}
}
