package risk

import (
	"github.com/rustyeddy/fxdesk/market"
)

// Input is what the position dialog feeds the calculator. StopLoss and
// TakeProfit are nil when the trader left them blank.
type Input struct {
	Entry          float64  `json:"entry"`
	StopLoss       *float64 `json:"stopLoss,omitempty"`
	TakeProfit     *float64 `json:"takeProfit,omitempty"`
	RiskAmount     float64  `json:"riskAmount"`
	RiskPercent    float64  `json:"riskPercentage"`
	Equity         float64  `json:"equity,omitempty"`
	PipSize        float64  `json:"pipSize"`
	PipValuePerLot float64  `json:"pipValuePerLot"`
}

type Result struct {
	StopLossPips       float64 `json:"stopLossPips"`
	RiskRewardRatio    float64 `json:"riskRewardRatio"`
	RecommendedLotSize float64 `json:"recommendedLotSize"`

	// RiskAmount is the amount actually used for sizing: RiskAmount when
	// set, otherwise RiskPercent of Equity.
	RiskAmount float64 `json:"riskAmount"`
	PipSize    float64 `json:"pipSize"`
}

// EffectiveRiskAmount picks the absolute amount if given, else derives it
// from the percentage of equity.
func (in Input) EffectiveRiskAmount() float64 {
	if in.RiskAmount > 0 {
		return in.RiskAmount
	}
	return RiskAmountFromPercent(in.Equity, in.RiskPercent)
}

func Calculate(in Input) Result {
	pips := StopLossPips(in.Entry, in.StopLoss, in.PipSize)
	amt := in.EffectiveRiskAmount()

	return Result{
		StopLossPips:       pips,
		RiskRewardRatio:    RiskReward(in.Entry, in.StopLoss, in.TakeProfit),
		RecommendedLotSize: RecommendedLotSize(amt, pips, in.PipValuePerLot),
		RiskAmount:         amt,
		PipSize:            in.PipSize,
	}
}

// WithPosition measures from the position's current price and falls back
// to the position's own SL/TP when the input leaves them unset.
func (in Input) WithPosition(pos market.Position) Input {
	in.Entry = pos.CurrentPrice
	if in.StopLoss == nil {
		in.StopLoss = pos.StopLoss
	}
	if in.TakeProfit == nil {
		in.TakeProfit = pos.TakeProfit
	}
	return in
}

func ForPosition(pos market.Position, in Input) Result {
	return Calculate(in.WithPosition(pos))
}

// Breakeven is the stop-loss level that closes pos without loss.
func Breakeven(pos market.Position) float64 {
	return pos.EntryPrice
}
