// Package classify maps trade notionals onto display tiers.
package classify

import "github.com/shopspring/decimal"

// Tier is the discrete size bucket assigned to a trade.
type Tier string

const (
	// Suppressed trades fall under the notional floor and produce no output.
	Suppressed Tier = "SUPPRESSED"
	// Notable trades clear the floor and print at normal weight.
	Notable Tier = "NOTABLE"
	// Large trades carry a single marker.
	Large Tier = "LARGE"
	// Whale trades carry a double marker and side-shifted colors.
	Whale Tier = "WHALE"
)

// Side labels the aggressor direction derived from the maker flag.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Color names the background hue the console should render for a trade.
type Color string

const (
	Green   Color = "green"
	Red     Color = "red"
	Blue    Color = "blue"
	Magenta Color = "magenta"
)

// Thresholds are the tier cut-offs in quote-currency units. Every bound is
// inclusive: a notional exactly on a cut-off belongs to the higher tier.
type Thresholds struct {
	Notable decimal.Decimal // floor; below this a trade is suppressed
	Bold    decimal.Decimal // bold rendering, independent of tier
	Large   decimal.Decimal
	Whale   decimal.Decimal
}

// DefaultThresholds returns the reference cut-offs: 15k floor, bold at 50k,
// 100k large, 500k whale.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Notable: decimal.NewFromInt(15_000),
		Bold:    decimal.NewFromInt(50_000),
		Large:   decimal.NewFromInt(100_000),
		Whale:   decimal.NewFromInt(500_000),
	}
}

// NewThresholds builds cut-offs from plain numbers, falling back to the
// defaults for any value that is not positive.
func NewThresholds(notable, bold, large, whale float64) Thresholds {
	th := DefaultThresholds()
	if notable > 0 {
		th.Notable = decimal.NewFromFloat(notable)
	}
	if bold > 0 {
		th.Bold = decimal.NewFromFloat(bold)
	}
	if large > 0 {
		th.Large = decimal.NewFromFloat(large)
	}
	if whale > 0 {
		th.Whale = decimal.NewFromFloat(whale)
	}
	return th
}

// Decision is the full rendering verdict for one trade.
type Decision struct {
	Tier    Tier
	Side    Side
	Color   Color
	Bold    bool
	Markers string // "", "*" or "**"
}

// SideOf maps the feed's maker flag to its display label. A true flag means
// the buyer rested, so the aggressor sold.
func SideOf(isBuyerMaker bool) Side {
	if isBuyerMaker {
		return Sell
	}
	return Buy
}

// Classify is a pure function from a non-negative notional and the maker flag
// to a Decision. Repeated calls with identical inputs yield identical output.
func (t Thresholds) Classify(notional decimal.Decimal, isBuyerMaker bool) Decision {
	d := Decision{Tier: Suppressed, Side: SideOf(isBuyerMaker), Color: Green}
	if isBuyerMaker {
		d.Color = Red
	}
	if notional.LessThan(t.Notable) {
		return d
	}
	d.Tier = Notable
	d.Bold = notional.GreaterThanOrEqual(t.Bold)
	switch {
	case notional.GreaterThanOrEqual(t.Whale):
		d.Tier = Whale
		d.Markers = "**"
		d.Bold = true
		if isBuyerMaker {
			d.Color = Magenta
		} else {
			d.Color = Blue
		}
	case notional.GreaterThanOrEqual(t.Large):
		d.Tier = Large
		d.Markers = "*"
	}
	return d
}
