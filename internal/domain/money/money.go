// internal/domain/money/money.go
package money

import "github.com/shopspring/decimal"

// Amounts are carried as float64 in documents (Firestore number) but all
// arithmetic happens on decimal.Decimal so currency totals stay exact.
//
// Policy:
// - line total = price * qty
// - cart total = Σ line totals
// - totals are rounded to 2 decimal places (currency precision)

// LineTotal returns price * qty rounded to 2 decimal places.
// qty < 0 is treated as 0 (a line can never subtract from a total).
func LineTotal(price float64, qty int) decimal.Decimal {
	if qty < 0 {
		qty = 0
	}
	p := decimal.NewFromFloat(price)
	return p.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

// Line is the minimal shape Total needs from a cart entry.
type Line struct {
	Price float64
	Qty   int
}

// Total returns the sum of line totals, rounded to 2 decimal places.
func Total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineTotal(l.Price, l.Qty))
	}
	return sum.Round(2)
}

// ToFloat converts a rounded total back to the document representation.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
