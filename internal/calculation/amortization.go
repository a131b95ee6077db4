package calculation

import "github.com/shopspring/decimal"

// Amortization helpers. All edge cases degrade to zero or simple division;
// nothing here returns an error.

var months = decimal.NewFromInt(12)

// MonthlyPayment computes the fixed payment that amortizes balance over
// termMonths at the given annual percentage rate (PMT). A non-positive rate
// degrades to straight-line division; a non-positive balance or term is 0.
func MonthlyPayment(balance, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) || termMonths <= 0 {
		return decimal.Zero
	}
	term := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return balance.Div(term)
	}

	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(100)).Div(months)
	// PMT = B * i * (1+i)^n / ((1+i)^n - 1)
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(term)
	return balance.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}

// InterestPortion is one month of interest on the given balance.
func InterestPortion(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Mul(annualRatePercent).Div(decimal.NewFromInt(100)).Div(months)
}

// PrincipalPortion is the part of a payment left after interest, never negative.
func PrincipalPortion(payment, interest decimal.Decimal) decimal.Decimal {
	principal := payment.Sub(interest)
	if principal.IsNegative() {
		return decimal.Zero
	}
	return principal
}
