package tier

import (
	"sort"
)

// Feature names a capability a dashboard panel asks about.
type Feature string

const (
	ManualTrades      Feature = "manual_trades"
	PositionHelpers   Feature = "position_helpers"
	RiskManagement    Feature = "risk_management"
	TrailingStops     Feature = "trailing_stops"
	AllPairs          Feature = "all_pairs"
	AIMode            Feature = "ai_mode"
	AutoLotSizing     Feature = "auto_lot_sizing"
	ScalpStrategy     Feature = "scalp_strategy"
	CustomConfigs     Feature = "custom_configs"
	BotControl        Feature = "bot_control"
	BotConfig         Feature = "bot_config"
	ConnectionStatus  Feature = "connection_status"
	SMCStrategy       Feature = "smc_strategy"
	BreakRetest       Feature = "break_retest"
	FullAutomation    Feature = "full_automation"
	PremiumStrategies Feature = "premium_strategies"
)

// minTier is built once at init and only read afterwards.
var minTier = map[Feature]Tier{
	ManualTrades:    Trial,
	PositionHelpers: Trial,

	RiskManagement: Basic,
	TrailingStops:  Basic,

	AllPairs:         Pro,
	AIMode:           Pro,
	AutoLotSizing:    Pro,
	ScalpStrategy:    Pro,
	CustomConfigs:    Pro,
	BotControl:       Pro,
	BotConfig:        Pro,
	ConnectionStatus: Pro,

	SMCStrategy:       Premium,
	BreakRetest:       Premium,
	FullAutomation:    Premium,
	PremiumStrategies: Premium,
}

// MinTier returns the lowest tier that unlocks f.
func MinTier(f Feature) (Tier, bool) {
	t, ok := minTier[f]
	return t, ok
}

// IsFeatureEnabled reports whether t unlocks f. Unknown features are
// disabled.
func IsFeatureEnabled(t Tier, f Feature) bool {
	min, ok := minTier[f]
	if !ok {
		return false
	}
	return t.AtLeast(min)
}

// IsFeatureEnabledName is IsFeatureEnabled for raw strings from the session
// and from UI panels. An unknown tier is disabled for everything.
func IsFeatureEnabledName(tierName, feature string) bool {
	t, err := ParseTier(tierName)
	if err != nil {
		return false
	}
	return IsFeatureEnabled(t, Feature(feature))
}

// Features lists every known feature, sorted by name.
func Features() []Feature {
	out := make([]Feature, 0, len(minTier))
	for f := range minTier {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EnabledFeatures lists the features t unlocks, sorted by name.
func EnabledFeatures(t Tier) []Feature {
	out := []Feature{}
	for _, f := range Features() {
		if IsFeatureEnabled(t, f) {
			out = append(out, f)
		}
	}
	return out
}
