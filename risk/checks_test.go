package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name  string
		in    Input
		codes []string
	}{
		{
			name: "clean",
			in: Input{Entry: 1.1000, StopLoss: lvl(1.0950), TakeProfit: lvl(1.1100),
				RiskAmount: 500, Equity: 50000, PipSize: 0.0001, PipValuePerLot: 10},
			codes: []string{},
		},
		{
			name:  "no stop",
			in:    Input{Entry: 1.1000, RiskAmount: 500, PipSize: 0.0001, PipValuePerLot: 10},
			codes: []string{"NO_STOP"},
		},
		{
			name: "poor rr",
			in: Input{Entry: 1.1000, StopLoss: lvl(1.0950), TakeProfit: lvl(1.1025),
				RiskAmount: 500, PipSize: 0.0001, PipValuePerLot: 10},
			codes: []string{"RR_TOO_LOW"},
		},
		{
			name: "too much risk and too big",
			in: Input{Entry: 1.1000, StopLoss: lvl(1.0990),
				RiskAmount: 5000, Equity: 50000, PipSize: 0.0001, PipValuePerLot: 10},
			codes: []string{"RISK_TOO_HIGH", "LOTS_ABOVE_MAX"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := Assess(p, tt.in, Calculate(tt.in))
			assert.Equal(t, tt.codes, a.Codes())
			assert.Equal(t, len(tt.codes) == 0, a.OK)
		})
	}
}
