package sink

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/SanchitSharma10/TradingAlgos/internal/classify"
	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
)

// Printer renders qualifying trades as single colored console lines.
type Printer struct {
	out         io.Writer
	loc         *time.Location
	quoteSuffix string
}

// NewPrinter builds a printer that renders trade times in the named IANA
// timezone and strips quoteSuffix from tickers.
func NewPrinter(out io.Writer, timezone, quoteSuffix string) (*Printer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", timezone, err)
	}
	return &Printer{out: out, loc: loc, quoteSuffix: quoteSuffix}, nil
}

// Emit writes one line for a non-suppressed trade: markers, side, display
// symbol, local trade time, and the notional with thousands separators,
// white text on the decision's background color.
func (p *Printer) Emit(ev trade.Event, d classify.Decision) {
	parts := []string{}
	if d.Markers != "" {
		parts = append(parts, d.Markers)
	}
	parts = append(parts,
		string(d.Side),
		ev.DisplaySymbol(p.quoteSuffix),
		ev.Time().In(p.loc).Format("15:04:05"),
		"$"+groupThousands(ev.Notional()),
	)
	line := strings.Join(parts, " ")

	c := color.New(color.FgWhite, background(d.Color))
	if d.Bold {
		c.Add(color.Bold)
	}
	c.Fprintln(p.out, line)
}

func background(c classify.Color) color.Attribute {
	switch c {
	case classify.Red:
		return color.BgRed
	case classify.Blue:
		return color.BgBlue
	case classify.Magenta:
		return color.BgMagenta
	default:
		return color.BgGreen
	}
}

// groupThousands renders a notional as whole units with comma separators.
func groupThousands(v decimal.Decimal) string {
	s := v.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
