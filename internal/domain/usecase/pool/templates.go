package pool

import "github.com/amirhossein-jamali/studrev/internal/domain/entity"

func newTemplate(difficulty entity.Difficulty) func(pattern, account string, accountType entity.AccountType, statement entity.StatementCategory) entity.Template {
	return func(pattern, account string, accountType entity.AccountType, statement entity.StatementCategory) entity.Template {
		return entity.Template{
			Pattern:    pattern,
			Account:    account,
			Type:       accountType,
			Statement:  statement,
			Difficulty: difficulty,
		}
	}
}

var (
	easy     = newTemplate(entity.DifficultyEasy)
	moderate = newTemplate(entity.DifficultyModerate)
	hard     = newTemplate(entity.DifficultyHard)
)

// Template tables per tier, cycled round-robin by the generator
var (
	easyTemplates = []entity.Template{
		easy("Paid {amt} cash for rent", "Rent Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		easy("Received {amt} cash for services rendered", "Service Revenue", entity.AccountTypeRevenue, entity.StatementIncomeStatement),
		easy("Bought supplies {amt} cash", "Supplies", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		easy("Paid salaries {amt}", "Salaries Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		easy("Owner invested {amt} cash into the business", "Capital", entity.AccountTypeEquity, entity.StatementOwnersEquity),
		easy("Received {amt} cash from customer (payment on account)", "Cash", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		easy("Paid {amt} for utilities", "Utilities Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		easy("Purchased small equipment {amt} cash", "Equipment", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		easy("Received interest income {amt}", "Interest Income", entity.AccountTypeRevenue, entity.StatementIncomeStatement),
		easy("Withdrew {amt} for personal use", "Drawing", entity.AccountTypeEquity, entity.StatementOwnersEquity),
	}

	moderateTemplates = []entity.Template{
		moderate("Purchased inventory {amt} on account", "Inventory", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		moderate("Sold goods {amt} on account", "Sales Revenue", entity.AccountTypeRevenue, entity.StatementIncomeStatement),
		moderate("Collected {amt} from accounts receivable", "Cash", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		moderate("Paid {amt} on accounts payable", "Accounts Payable", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		moderate("Paid {amt} cash for prepaid insurance", "Prepaid Insurance", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		moderate("Accrued salaries {amt}", "Salaries Payable", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		moderate("Received {amt} cash advance from customer", "Unearned Revenue", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		moderate("Paid bank service charge {amt}", "Bank Charges Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		moderate("Sold equipment for {amt} cash (no gain/loss recorded)", "Cash", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		moderate("Recorded depreciation expense {amt}", "Depreciation Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
	}

	hardTemplates = []entity.Template{
		hard("Recognized amortization {amt}", "Amortization Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		hard("Write-off bad debt {amt} for an uncollectible account", "Allowance for Doubtful Accounts", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		hard("Accrued interest payable {amt}", "Interest Payable", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		hard("Reclassified portion of long-term note due within a year {amt}", "Current Portion of Long-term Debt", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		hard("Adjusted supplies expense {amt} (used during period)", "Supplies Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
		hard("Purchased equipment {amt} (paid {cash} cash and {onAcc} on account)", "Equipment", entity.AccountTypeAsset, entity.StatementBalanceSheet),
		hard("Received {amt} cash and recognized earned portion {earned}", "Unearned Revenue", entity.AccountTypeLiability, entity.StatementBalanceSheet),
		hard("Closing entry: close revenues to Income Summary {amt}", "Income Summary", entity.AccountTypeEquity, entity.StatementOwnersEquity),
		hard("Correction of prior period error {amt} (adjust retained earnings)", "Retained Earnings", entity.AccountTypeEquity, entity.StatementOwnersEquity),
		hard("Lease payment split: interest {interest} principal {principal}", "Interest Expense", entity.AccountTypeExpense, entity.StatementIncomeStatement),
	}
)

// Tier describes how many records a difficulty contributes and its amount range
type Tier struct {
	Difficulty entity.Difficulty
	Templates  []entity.Template
	Count      int
	MinAmount  int
	MaxAmount  int
}

// Tiers are generated in this order, which also fixes id assignment
var Tiers = []Tier{
	{Difficulty: entity.DifficultyEasy, Templates: easyTemplates, Count: 200, MinAmount: 500, MaxAmount: 15000},
	{Difficulty: entity.DifficultyModerate, Templates: moderateTemplates, Count: 200, MinAmount: 1500, MaxAmount: 45000},
	{Difficulty: entity.DifficultyHard, Templates: hardTemplates, Count: 100, MinAmount: 1000, MaxAmount: 120000},
}

// secondaryPlaceholder is a sub-amount drawn from [Min, primary/Divisor]
type secondaryPlaceholder struct {
	Token   string
	Min     int
	Divisor int
}

var secondaryPlaceholders = []secondaryPlaceholder{
	{Token: "{cash}", Min: 200, Divisor: 2},
	{Token: "{onAcc}", Min: 200, Divisor: 2},
	{Token: "{earned}", Min: 200, Divisor: 2},
	{Token: "{interest}", Min: 50, Divisor: 4},
	{Token: "{principal}", Min: 50, Divisor: 3},
}
