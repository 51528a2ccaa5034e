package pool

import (
	"strings"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

const (
	// PoolSize is the total number of records across all tiers
	PoolSize = 500

	amountPlaceholder = "{amt}"
)

// GeneratePool stamps out the full question pool: every tier in order, templates
// taken round-robin, ids assigned from 1. Only the amounts depend on rng.
func GeneratePool(rng coreport.RandomSource) []entity.TransactionRecord {
	pool := make([]entity.TransactionRecord, 0, PoolSize)
	id := 1

	for _, tier := range Tiers {
		for i := 0; i < tier.Count; i++ {
			tmpl := tier.Templates[i%len(tier.Templates)]
			amount := rng.IntInRange(tier.MinAmount, tier.MaxAmount)
			description := fillPattern(tmpl.Pattern, amount, rng)

			pool = append(pool, entity.NewTransactionRecord(id, tmpl, description, amount))
			id++
		}
	}

	return pool
}

// fillPattern substitutes the primary amount and any secondary placeholders
func fillPattern(pattern string, amount int, rng coreport.RandomSource) string {
	description := strings.Replace(pattern, amountPlaceholder, entity.FormatAmount(amount), 1)

	for _, placeholder := range secondaryPlaceholders {
		if !strings.Contains(description, placeholder.Token) {
			continue
		}
		upper := amount / placeholder.Divisor
		if upper < placeholder.Min {
			upper = placeholder.Min
		}
		part := rng.IntInRange(placeholder.Min, upper)
		description = strings.Replace(description, placeholder.Token, entity.FormatAmount(part), 1)
	}

	return description
}
