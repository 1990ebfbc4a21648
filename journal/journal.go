package journal

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("journal record not found")

// CalculationRecord is one run of the position-size calculator as shown to
// the trader. Absent levels are nil.
type CalculationRecord struct {
	ID             string
	Time           time.Time
	Instrument     string
	Entry          float64
	StopLoss       *float64
	TakeProfit     *float64
	RiskAmount     float64
	PipValuePerLot float64
	StopLossPips   float64
	RiskReward     float64
	LotSize        float64
}

// GateCheck records a feature-visibility decision.
type GateCheck struct {
	ID      string
	Time    time.Time
	Tier    string
	Feature string
	Enabled bool
}

type Journal interface {
	RecordCalculation(CalculationRecord) error
	RecordGateCheck(GateCheck) error
	Close() error
}
