package pricing

import "github.com/shopspring/decimal"

// registry maps policy tags to constructors. Thresholds and rates here are
// demo defaults; callers wanting other figures build the policy directly.
var registry = map[string]func() Pricer{
	"flat": func() Pricer { return Flat{} },
	"bulk": func() Pricer {
		return Bulk{Threshold: 10, Percent: decimal.NewFromInt(5)}
	},
	"taxed": func() Pricer {
		return Taxed{Base: Flat{}, Rate: decimal.NewFromFloat(7.5)}
	},
}

// New returns the policy registered under tag. An unrecognized tag falls
// back to the flat policy.
func New(tag string) Pricer {
	if ctor, ok := registry[tag]; ok {
		return ctor()
	}
	return Flat{}
}
