package entity

import "fmt"

type explanationPair struct {
	primary   string
	secondary string
}

// explanations is keyed by account type; %s is replaced with the account name.
// Secondary strings are the Tagalog rendering shown alongside the English one.
var explanations = map[AccountType]explanationPair{
	AccountTypeAsset: {
		primary:   "%s is an asset: increases with Debit, decreases with Credit.",
		secondary: "%s ay ari-arian: tumataas sa Debit, bumababa sa Credit.",
	},
	AccountTypeLiability: {
		primary:   "%s is a liability: increases with Credit, decreases with Debit.",
		secondary: "%s ay pananagutan: tumataas sa Credit, bumababa sa Debit.",
	},
	AccountTypeEquity: {
		primary:   "%s is equity: usually increases with Credit, decreases with withdrawals.",
		secondary: "%s ay equity: karaniwang tumataas sa Credit, bumababa sa withdrawals.",
	},
	AccountTypeRevenue: {
		primary:   "%s is revenue: increases with Credit, appears on Income Statement.",
		secondary: "%s ay kita: tumataas sa Credit, makikita sa Income Statement.",
	},
	AccountTypeExpense: {
		primary:   "%s is an expense: increases with Debit, appears on Income Statement.",
		secondary: "%s ay gastos: tumataas sa Debit, makikita sa Income Statement.",
	},
}

// Explain returns the primary and secondary rationale for an account.
// The result depends only on (account, accountType); unknown types yield empty strings.
func Explain(account string, accountType AccountType) (string, string) {
	pair, ok := explanations[accountType]
	if !ok {
		return "", ""
	}
	return fmt.Sprintf(pair.primary, account), fmt.Sprintf(pair.secondary, account)
}
