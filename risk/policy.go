package risk

type Policy struct {
	// MaxRiskPct is the largest share of equity one trade may risk (0.02 = 2%).
	MaxRiskPct float64 `json:"max_risk_pct" yaml:"max_risk_pct"`

	// MinRR is the smallest acceptable reward per unit of risk.
	MinRR float64 `json:"min_rr" yaml:"min_rr"`

	// MaxLots caps the recommended size; 0 disables the check.
	MaxLots float64 `json:"max_lots" yaml:"max_lots"`
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPct: 0.02,
		MinRR:      1.5,
		MaxLots:    10,
	}
}
