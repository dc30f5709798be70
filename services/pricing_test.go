package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(menuID uint, price int64, qty int) CartLine {
	return CartLine{
		MenuID:    menuID,
		UnitPrice: price,
		Qty:       qty,
		Subtotal:  price * int64(qty),
	}
}

func TestCalculatePricingRejectsOutOfRangeDiscount(t *testing.T) {
	lines := []CartLine{line(1, 10000, 1)}

	_, err := CalculatePricing(lines, -1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = CalculatePricing(lines, 101)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = CalculatePricing(lines, 0)
	assert.NoError(t, err)
	_, err = CalculatePricing(lines, 100)
	assert.NoError(t, err)
}

func TestCalculatePricingNasiGorengScenario(t *testing.T) {
	// 2 x 25000, discount 10%, tax 10% on the discounted amount
	lines := []CartLine{line(1, 25000, 2)}

	p, err := CalculatePricing(lines, 10)
	require.NoError(t, err)

	r := p.Rounded()
	assert.Equal(t, int64(50000), r.Subtotal)
	assert.Equal(t, int64(5000), r.DiscountAmount)
	assert.Equal(t, int64(4500), r.TaxAmount)
	assert.Equal(t, int64(49500), r.Total)
}

func TestCalculatePricingNoDiscount(t *testing.T) {
	lines := []CartLine{line(1, 10000, 1)}

	p, err := CalculatePricing(lines, 0)
	require.NoError(t, err)

	r := p.Rounded()
	assert.Equal(t, int64(10000), r.Subtotal)
	assert.Equal(t, int64(0), r.DiscountAmount)
	assert.Equal(t, int64(1000), r.TaxAmount)
	assert.Equal(t, int64(11000), r.Total)
}

func TestCalculatePricingEmptyCartIsZero(t *testing.T) {
	p, err := CalculatePricing(nil, 25)
	require.NoError(t, err)

	r := p.Rounded()
	assert.Equal(t, int64(0), r.Subtotal)
	assert.Equal(t, int64(0), r.Total)
}

// The arithmetic identities must hold exactly for every legal discount rate:
// discount = s*d/100, tax = (s-discount)*10/100, total = s - discount + tax.
func TestCalculatePricingIdentities(t *testing.T) {
	subtotals := []int64{1, 999, 12345, 50000, 987654321}
	hundred := decimal.NewFromInt(100)

	for _, s := range subtotals {
		for d := 0; d <= 100; d++ {
			p, err := CalculatePricing([]CartLine{line(1, s, 1)}, d)
			require.NoError(t, err)

			sub := decimal.NewFromInt(s)
			wantDiscount := sub.Mul(decimal.NewFromInt(int64(d))).Div(hundred)
			wantTax := sub.Sub(wantDiscount).Mul(decimal.NewFromInt(TaxRatePercent)).Div(hundred)
			wantTotal := sub.Sub(wantDiscount).Add(wantTax)

			assert.True(t, p.DiscountAmount.Equal(wantDiscount), "discount for s=%d d=%d", s, d)
			assert.True(t, p.TaxAmount.Equal(wantTax), "tax for s=%d d=%d", s, d)
			assert.True(t, p.Total.Equal(wantTotal), "total for s=%d d=%d", s, d)
			assert.False(t, p.Total.IsNegative(), "total must stay >= 0")
		}
	}
}

// Rounding happens once, on presentation; recomputing and rounding again
// gives the same values instead of drifting.
func TestRoundedIsStable(t *testing.T) {
	lines := []CartLine{line(1, 999, 1)}

	p, err := CalculatePricing(lines, 50)
	require.NoError(t, err)

	first := p.Rounded()
	second := p.Rounded()
	assert.Equal(t, first, second)

	// exact values keep fractions; samples: discount 499.5, tax 49.95
	assert.True(t, p.DiscountAmount.Equal(decimal.RequireFromString("499.5")))
	assert.True(t, p.TaxAmount.Equal(decimal.RequireFromString("49.95")))
	assert.Equal(t, int64(549), first.Total) // 549.45 rounded once
}
