package risk

import (
	"fmt"
)

type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

// Assessment is advisory output shown next to the calculator. It never
// blocks anything.
type Assessment struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations,omitempty"`
}

func (a *Assessment) add(code, msg string) {
	a.Violations = append(a.Violations, Violation{Code: code, Msg: msg})
	a.OK = false
}

// Codes reports the violation codes in the order they were raised.
func (a Assessment) Codes() []string {
	codes := make([]string, 0, len(a.Violations))
	for _, v := range a.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func Assess(p Policy, in Input, r Result) Assessment {
	a := Assessment{OK: true}

	if r.StopLossPips == 0 {
		a.add("NO_STOP", "stop-loss distance is undefined; lot size cannot be computed")
		return a
	}

	if in.TakeProfit != nil && p.MinRR > 0 && r.RiskRewardRatio < p.MinRR {
		a.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", r.RiskRewardRatio, p.MinRR))
	}

	if in.Equity > 0 && p.MaxRiskPct > 0 {
		pct := r.RiskAmount / in.Equity
		if pct > p.MaxRiskPct {
			a.add("RISK_TOO_HIGH",
				fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%",
					100*pct, 100*p.MaxRiskPct))
		}
	}

	if p.MaxLots > 0 && r.RecommendedLotSize > p.MaxLots {
		a.add("LOTS_ABOVE_MAX",
			fmt.Sprintf("recommended %.2f lots exceeds max %.2f", r.RecommendedLotSize, p.MaxLots))
	}

	return a
}
