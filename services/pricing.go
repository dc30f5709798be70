package services

import (
	"github.com/shopspring/decimal"
)

// TaxRatePercent is charged on the discounted amount.
const TaxRatePercent = 10

// PricingResult holds the exact (unrounded) breakdown of a cart.
// Intermediate arithmetic stays decimal; rounding happens once, in Rounded().
type PricingResult struct {
	Subtotal       decimal.Decimal
	DiscountRate   int
	DiscountAmount decimal.Decimal
	TaxRate        int
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// RoundedPricing is the presentation projection: whole-rupiah amounts.
type RoundedPricing struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountRate   int   `json:"discountRate"`
	DiscountAmount int64 `json:"discountAmount"`
	TaxRate        int   `json:"taxRate"`
	TaxAmount      int64 `json:"taxAmount"`
	Total          int64 `json:"total"`
}

// CalculatePricing computes subtotal/discount/tax/total for the given cart
// lines. Pure and deterministic; safe to recompute on every cart mutation.
func CalculatePricing(lines []CartLine, discountRate int) (*PricingResult, error) {
	if discountRate < 0 || discountRate > 100 {
		return nil, ErrInvalidDiscount
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromInt(l.Subtotal))
	}

	hundred := decimal.NewFromInt(100)
	discount := subtotal.Mul(decimal.NewFromInt(int64(discountRate))).Div(hundred)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(decimal.NewFromInt(TaxRatePercent)).Div(hundred)

	return &PricingResult{
		Subtotal:       subtotal,
		DiscountRate:   discountRate,
		DiscountAmount: discount,
		TaxRate:        TaxRatePercent,
		TaxAmount:      tax,
		Total:          taxable.Add(tax),
	}, nil
}

// Rounded rounds each displayed value to whole rupiah, once, from the exact
// figures. Repeated calls never drift.
func (p *PricingResult) Rounded() RoundedPricing {
	return RoundedPricing{
		Subtotal:       p.Subtotal.Round(0).IntPart(),
		DiscountRate:   p.DiscountRate,
		DiscountAmount: p.DiscountAmount.Round(0).IntPart(),
		TaxRate:        p.TaxRate,
		TaxAmount:      p.TaxAmount.Round(0).IntPart(),
		Total:          p.Total.Round(0).IntPart(),
	}
}
