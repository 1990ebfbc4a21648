package risk

import (
	"math"

	"github.com/shopspring/decimal"
)

// Pip distances are normalised to this many decimals so that binary float
// noise (1.0875-1.0825 = 0.005000000000000115) does not leak into results.
const pipPlaces = 6

// Lot sizes are quoted to hundredths of a lot (micro lots).
const lotPlaces = 2

func round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// PipSize returns the price size of one pip for a pip location, 10^loc.
func PipSize(loc int) float64 {
	return math.Pow(10, float64(loc))
}

// StopLossPips is the distance between entry and stop-loss in pips. A nil
// stop-loss yields 0, which callers must read as "undefined distance" and
// not as "no risk".
func StopLossPips(entry float64, stopLoss *float64, pipSize float64) float64 {
	if stopLoss == nil || pipSize <= 0 {
		return 0
	}
	return round(math.Abs(entry-*stopLoss)/pipSize, pipPlaces)
}

// RiskReward is the take-profit distance over the stop-loss distance. It is
// 0 when either level is missing or the stop sits on the entry.
func RiskReward(entry float64, stopLoss, takeProfit *float64) float64 {
	if stopLoss == nil || takeProfit == nil {
		return 0
	}
	risk := math.Abs(*stopLoss - entry)
	if risk == 0 {
		return 0
	}
	rr := math.Abs(*takeProfit-entry) / risk
	if math.IsNaN(rr) || math.IsInf(rr, 0) {
		return 0
	}
	return rr
}

// RecommendedLotSize sizes a position so that hitting the stop loses
// riskAmount. The result is rounded to 2 decimals and is 0 whenever the
// division is not meaningful.
func RecommendedLotSize(riskAmount, stopLossPips, pipValuePerLot float64) float64 {
	if stopLossPips <= 0 || pipValuePerLot <= 0 || riskAmount <= 0 {
		return 0
	}
	lots := riskAmount / (stopLossPips * pipValuePerLot)
	if math.IsNaN(lots) || math.IsInf(lots, 0) || lots < 0 {
		return 0
	}
	return round(lots, lotPlaces)
}

// RiskAmountFromPercent converts a percentage of equity (0-100) into an
// account-currency amount.
func RiskAmountFromPercent(equity, pct float64) float64 {
	if equity <= 0 || pct <= 0 || pct > 100 {
		return 0
	}
	amt := equity * pct / 100
	if math.IsInf(amt, 0) {
		return 0
	}
	return amt
}
