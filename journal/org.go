package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatCalculationOrg renders a calculation as an Org-mode block with the
// numbers in a PROPERTIES drawer.
func FormatCalculationOrg(c CalculationRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Sizing: %s (%s)\n", c.Instrument, shortID(c.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", c.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", c.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":INSTRUMENT: %s\n", c.Instrument)
	fmt.Fprintf(&b, ":ENTRY: %.5f\n", c.Entry)
	fmt.Fprintf(&b, ":STOP_LOSS: %s\n", orgLevel(c.StopLoss))
	fmt.Fprintf(&b, ":TAKE_PROFIT: %s\n", orgLevel(c.TakeProfit))
	fmt.Fprintf(&b, ":RISK_AMOUNT: %.2f\n", c.RiskAmount)
	fmt.Fprintf(&b, ":PIP_VALUE: %.2f\n", c.PipValuePerLot)
	fmt.Fprintf(&b, ":SL_PIPS: %.1f\n", c.StopLossPips)
	fmt.Fprintf(&b, ":RISK_REWARD: %.2f\n", c.RiskReward)
	fmt.Fprintf(&b, ":LOT_SIZE: %.2f\n", c.LotSize)
	b.WriteString(":END:\n")
	return b.String()
}

// FormatCalculationsOrg renders several calculations separated by blank lines.
func FormatCalculationsOrg(cs []CalculationRecord) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatCalculationOrg(c))
	}
	return b.String()
}

func orgLevel(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.5f", *p)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
