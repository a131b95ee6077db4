package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		rate    decimal.Decimal
		term    int
		// expected bounds for the payment
		atLeast decimal.Decimal
		atMost  decimal.Decimal
	}{
		{
			name:    "zero rate is straight-line",
			balance: decimal.NewFromInt(12000),
			rate:    decimal.Zero,
			term:    12,
			atLeast: decimal.NewFromInt(1000),
			atMost:  decimal.NewFromInt(1000),
		},
		{
			name:    "credit card 5000 at 20 percent over 36 months",
			balance: decimal.NewFromInt(5000),
			rate:    decimal.NewFromInt(20),
			term:    36,
			// standard PMT answer is about 185.82
			atLeast: decimal.NewFromInt(185),
			atMost:  decimal.NewFromInt(187),
		},
		{
			name:    "mortgage 300000 at 6 percent over 360 months",
			balance: decimal.NewFromInt(300000),
			rate:    decimal.NewFromInt(6),
			term:    360,
			// standard PMT answer is about 1798.65
			atLeast: decimal.NewFromInt(1795),
			atMost:  decimal.NewFromInt(1802),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.balance, tt.rate, tt.term)
			assert.True(t, payment.GreaterThanOrEqual(tt.atLeast),
				"payment %s below expected minimum %s", payment, tt.atLeast)
			assert.True(t, payment.LessThanOrEqual(tt.atMost),
				"payment %s above expected maximum %s", payment, tt.atMost)
		})
	}
}

func TestMonthlyPaymentDegenerateInputs(t *testing.T) {
	assert.True(t, MonthlyPayment(decimal.Zero, decimal.NewFromInt(10), 36).IsZero())
	assert.True(t, MonthlyPayment(decimal.NewFromInt(-500), decimal.NewFromInt(10), 36).IsZero())
	assert.True(t, MonthlyPayment(decimal.NewFromInt(5000), decimal.NewFromInt(10), 0).IsZero())
	assert.True(t, MonthlyPayment(decimal.NewFromInt(5000), decimal.NewFromInt(10), -12).IsZero())
}

func TestInterestPortion(t *testing.T) {
	// 1200 at 12% annual is exactly 12 per month.
	interest := InterestPortion(decimal.NewFromInt(1200), decimal.NewFromInt(12))
	assert.True(t, interest.Equal(decimal.NewFromInt(12)), "got %s", interest)

	assert.True(t, InterestPortion(decimal.Zero, decimal.NewFromInt(12)).IsZero())
	assert.True(t, InterestPortion(decimal.NewFromInt(1200), decimal.Zero).IsZero())
	assert.True(t, InterestPortion(decimal.NewFromInt(-100), decimal.NewFromInt(12)).IsZero())
}

func TestPrincipalPortion(t *testing.T) {
	principal := PrincipalPortion(decimal.NewFromInt(200), decimal.NewFromInt(50))
	assert.True(t, principal.Equal(decimal.NewFromInt(150)))

	// Payment below interest never goes negative.
	assert.True(t, PrincipalPortion(decimal.NewFromInt(40), decimal.NewFromInt(50)).IsZero())
}
