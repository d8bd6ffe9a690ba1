package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlat_Total(t *testing.T) {
	total := Flat{}.Total(decimal.RequireFromString("999.99"), 3)
	assert.Equal(t, "2999.97", total.String())
}

func TestBulk_Total(t *testing.T) {
	bulk := Bulk{Threshold: 10, Percent: decimal.NewFromInt(5)}
	unit := decimal.RequireFromString("10.00")

	t.Run("below threshold charges flat", func(t *testing.T) {
		assert.Equal(t, "90", bulk.Total(unit, 9).String())
	})

	t.Run("at threshold discounts", func(t *testing.T) {
		assert.Equal(t, "95", bulk.Total(unit, 10).String())
	})

	t.Run("discount capability", func(t *testing.T) {
		off := bulk.Discount(decimal.NewFromInt(200), 20)
		assert.Equal(t, "10", off.String())
	})
}

func TestTaxed_Total(t *testing.T) {
	taxed := Taxed{Base: Flat{}, Rate: decimal.NewFromInt(10)}
	unit := decimal.RequireFromString("50.00")

	assert.Equal(t, "110", taxed.Total(unit, 2).String())
	assert.Equal(t, "10", taxed.Tax(decimal.NewFromInt(100)).String())
}

func TestTaxed_WrapsAnyPolicy(t *testing.T) {
	// Tax on top of a bulk discount: 10 units at 10.00, 5% off, then 10% tax.
	taxed := Taxed{
		Base: Bulk{Threshold: 10, Percent: decimal.NewFromInt(5)},
		Rate: decimal.NewFromInt(10),
	}
	assert.Equal(t, "104.5", taxed.Total(decimal.RequireFromString("10.00"), 10).String())
}

func TestNew_Factory(t *testing.T) {
	t.Run("known tags", func(t *testing.T) {
		assert.IsType(t, Flat{}, New("flat"))
		assert.IsType(t, Bulk{}, New("bulk"))
		assert.IsType(t, Taxed{}, New("taxed"))
	})

	t.Run("unknown tag falls back to flat", func(t *testing.T) {
		p := New("loyalty-points")
		assert.IsType(t, Flat{}, p)
		assert.Equal(t, "30", p.Total(decimal.NewFromInt(10), 3).String())
	})
}

func TestCapabilityInterfaces(t *testing.T) {
	// Policies pick up capabilities piecemeal: bulk discounts but does not
	// tax, taxed taxes but does not discount.
	var bulk any = Bulk{}
	_, ok := bulk.(Discounter)
	assert.True(t, ok)
	_, ok = bulk.(Taxer)
	assert.False(t, ok)

	var taxed any = Taxed{}
	_, ok = taxed.(Taxer)
	assert.True(t, ok)
	_, ok = taxed.(Discounter)
	assert.False(t, ok)

	_, ok = any(Flat{}).(Discounter)
	assert.False(t, ok)
}
