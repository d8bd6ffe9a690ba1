package pricing

import "github.com/shopspring/decimal"

// Pricer computes the total charged for quantity units at a unit price.
type Pricer interface {
	Total(unit decimal.Decimal, quantity int) decimal.Decimal
}

// Discounter is implemented by policies that deduct from the flat total.
type Discounter interface {
	Discount(flat decimal.Decimal, quantity int) decimal.Decimal
}

// Taxer is implemented by policies that add tax on top of a total.
type Taxer interface {
	Tax(total decimal.Decimal) decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Flat charges exactly unit price times quantity.
type Flat struct{}

func (Flat) Total(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// Bulk charges the flat total minus Percent once quantity reaches Threshold.
type Bulk struct {
	Threshold int
	Percent   decimal.Decimal
}

func (b Bulk) Total(unit decimal.Decimal, quantity int) decimal.Decimal {
	flat := Flat{}.Total(unit, quantity)
	return flat.Sub(b.Discount(flat, quantity))
}

func (b Bulk) Discount(flat decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < b.Threshold {
		return decimal.Zero
	}
	return flat.Mul(b.Percent).Div(hundred)
}

// Taxed wraps another policy and adds Rate percent on top of its total.
type Taxed struct {
	Base Pricer
	Rate decimal.Decimal
}

func (t Taxed) Total(unit decimal.Decimal, quantity int) decimal.Decimal {
	base := t.Base.Total(unit, quantity)
	return base.Add(t.Tax(base))
}

func (t Taxed) Tax(total decimal.Decimal) decimal.Decimal {
	return total.Mul(t.Rate).Div(hundred)
}
