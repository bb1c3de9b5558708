package ledger

import (
	"math"

	"github.com/shopspring/decimal"

	model "sharedbid/internal/models"
)

const monetaryPrecision int32 = 2 // cents

// toMoney rounds a float amount to cents. Callers must reject non-finite input first.
func toMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(monetaryPrecision)
}

func fromMoney(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// normalizeAmount rounds a positive finite amount to cents. ok is false for
// NaN, infinities and anything that rounds to zero or below.
func normalizeAmount(v float64) (amount float64, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	d := toMoney(v)
	if !d.IsPositive() {
		return 0, false
	}
	return fromMoney(d), true
}

// exceeds reports a > b at cent precision
func exceeds(a, b float64) bool {
	return toMoney(a).GreaterThan(toMoney(b))
}

// reaches reports a >= b at cent precision
func reaches(a, b float64) bool {
	return toMoney(a).GreaterThanOrEqual(toMoney(b))
}

// sumContributions totals participant contributions at cent precision
func sumContributions(participants []model.Participant) float64 {
	total := decimal.Zero
	for _, p := range participants {
		total = total.Add(toMoney(p.ContributionAmount))
	}
	return fromMoney(total)
}

// sumAmounts totals amounts at cent precision
func sumAmounts(amounts ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(toMoney(a))
	}
	return total
}
