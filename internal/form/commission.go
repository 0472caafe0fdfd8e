// Package form owns the client-side orchestration state: the reducer-style
// state store, the section navigator, and the commission calculator. All of
// it is synchronous and non-suspending; records are treated as copy-on-write
// snapshots.
package form

import (
	"math"
	"strconv"

	"tcintake/internal/validation"
	"tcintake/pkg/domain"
)

// CommissionPair identifies one of the three percentage/fixed commission
// pairs kept in sync by the calculator.
type CommissionPair int

// Commission pairs.
const (
	PairTotal CommissionPair = iota
	PairListing
	PairBuyers
)

// Calculator reconciles the percentage and fixed-dollar representations of
// each commission pair against the record's base amount. Methods take and
// return record snapshots; nothing is mutated in place.
type Calculator struct{}

// BaseAmount returns the amount percentages are computed against: the sale
// price, or sale price minus seller assist in net-proceeds mode. ok is false
// when the needed inputs are absent or unparsable.
func (Calculator) BaseAmount(record domain.TransactionRecord) (float64, bool) {
	price, err := strconv.ParseFloat(validation.CleanNumeric(record.SalePrice), 64)
	if err != nil {
		return 0, false
	}
	if record.CommissionBase == domain.BaseSalePrice {
		return price, true
	}
	assist, err := strconv.ParseFloat(validation.CleanNumeric(record.SellerAssist), 64)
	if err != nil {
		// Net-proceeds mode without a seller assist falls back to the price.
		return price, true
	}
	return price - assist, true
}

// ToFixed converts a percentage of the base into a 2-decimal dollar string.
func (Calculator) ToFixed(percentage, base float64) string {
	return strconv.FormatFloat(round2(base*percentage/100), 'f', 2, 64)
}

// ToPercentage converts a fixed dollar amount into a percentage of the base,
// rounded to 3 decimal places with trailing zeros trimmed.
func (Calculator) ToPercentage(fixed, base float64) string {
	if base == 0 {
		return ""
	}
	return formatPercent(fixed / base * 100)
}

// SetPercentage applies a percentage-field edit: the input is cleaned and
// truncated to 3 decimal places, the pair's manual flag is cleared, and the
// derived values are recomputed.
func (c Calculator) SetPercentage(record domain.TransactionRecord, pair CommissionPair, input string) domain.TransactionRecord {
	out := record.Clone()
	value := truncateDecimals(validation.CleanNumeric(input), 3)
	switch pair {
	case PairTotal:
		out.TotalCommission = value
		out.IsManualTotalFixed = false
	case PairListing:
		out.ListingAgentCommission = value
		out.IsManualListingFixed = false
	case PairBuyers:
		out.BuyersAgentCommission = value
		out.IsManualBuyersFixed = false
	}
	return c.Recalculate(out)
}

// SetFixed applies a fixed-amount edit: the raw cleaned numeric string is
// stored as typed and the pair's manual flag is set, suppressing recompute
// until BlurFixed normalizes the value.
func (Calculator) SetFixed(record domain.TransactionRecord, pair CommissionPair, input string) domain.TransactionRecord {
	out := record.Clone()
	value := validation.CleanNumeric(input)
	switch pair {
	case PairTotal:
		out.TotalCommissionFixed = value
		out.IsManualTotalFixed = true
	case PairListing:
		out.ListingAgentCommissionFixed = value
		out.IsManualListingFixed = true
	case PairBuyers:
		out.BuyersAgentCommissionFixed = value
		out.IsManualBuyersFixed = true
	}
	return out
}

// BlurFixed normalizes a hand-edited fixed amount to 2 decimals, recomputes
// the percentage counterpart, clears the pair's manual flag, and re-derives
// the buyer's split from the total and listing fixed amounts.
func (c Calculator) BlurFixed(record domain.TransactionRecord, pair CommissionPair) domain.TransactionRecord {
	base, ok := c.BaseAmount(record)
	if !ok || base == 0 {
		return record
	}
	out := record.Clone()
	raw := fixedValue(out, pair)
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return out
	}
	formatted := strconv.FormatFloat(round2(amount), 'f', 2, 64)
	percent := c.ToPercentage(amount, base)

	switch pair {
	case PairTotal:
		out.TotalCommissionFixed = formatted
		out.TotalCommission = percent
		out.IsManualTotalFixed = false
		if listing, err := strconv.ParseFloat(out.ListingAgentCommissionFixed, 64); err == nil {
			buyers := round2(amount - listing)
			out.BuyersAgentCommissionFixed = strconv.FormatFloat(buyers, 'f', 2, 64)
			out.BuyersAgentCommission = c.ToPercentage(buyers, base)
		}
	case PairListing:
		out.ListingAgentCommissionFixed = formatted
		out.ListingAgentCommission = percent
		out.IsManualListingFixed = false
		if total, err := strconv.ParseFloat(out.TotalCommissionFixed, 64); err == nil {
			buyers := round2(total - amount)
			out.BuyersAgentCommissionFixed = strconv.FormatFloat(buyers, 'f', 2, 64)
			out.BuyersAgentCommission = c.ToPercentage(buyers, base)
		}
	case PairBuyers:
		out.BuyersAgentCommissionFixed = formatted
		out.BuyersAgentCommission = percent
		out.IsManualBuyersFixed = false
	}
	return out
}

// Recalculate derives the fixed counterparts and the buyer's agent split from
// the current percentages. It is a no-op while any manual fixed edit is in
// progress, so it never fights a value the user is still typing.
func (c Calculator) Recalculate(record domain.TransactionRecord) domain.TransactionRecord {
	base, ok := c.BaseAmount(record)
	if !ok || base == 0 {
		return record
	}
	if record.IsManualTotalFixed || record.IsManualListingFixed || record.IsManualBuyersFixed {
		return record
	}
	out := record.Clone()
	if total, err := strconv.ParseFloat(out.TotalCommission, 64); err == nil {
		out.TotalCommissionFixed = c.ToFixed(total, base)
	}
	if listing, err := strconv.ParseFloat(out.ListingAgentCommission, 64); err == nil {
		out.ListingAgentCommissionFixed = c.ToFixed(listing, base)
		if total, err := strconv.ParseFloat(out.TotalCommission, 64); err == nil {
			out.BuyersAgentCommission = formatPercent(total - listing)
			out.BuyersAgentCommissionFixed = c.ToFixed(total-listing, base)
		}
	}
	if buyers, err := strconv.ParseFloat(out.BuyersAgentCommission, 64); err == nil {
		out.BuyersAgentCommissionFixed = c.ToFixed(buyers, base)
	}
	return out
}

// SetCurrency cleans a free-form currency input (buyer-paid commission,
// seller assist) without deriving anything.
func (Calculator) SetCurrency(input string) string {
	return validation.CleanNumeric(input)
}

func fixedValue(record domain.TransactionRecord, pair CommissionPair) string {
	switch pair {
	case PairTotal:
		return record.TotalCommissionFixed
	case PairListing:
		return record.ListingAgentCommissionFixed
	}
	return record.BuyersAgentCommissionFixed
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// formatPercent renders a percentage rounded to 3 decimals without trailing
// zeros, so a whole-number split reads "6" rather than "6.000".
func formatPercent(v float64) string {
	return strconv.FormatFloat(round3(v), 'f', -1, 64)
}

// truncateDecimals limits the fractional part of a numeric string to n
// digits without rounding, matching typed-input behavior.
func truncateDecimals(value string, n int) string {
	for i := 0; i < len(value); i++ {
		if value[i] == '.' {
			end := i + 1 + n
			if end > len(value) {
				end = len(value)
			}
			return value[:end]
		}
	}
	return value
}
