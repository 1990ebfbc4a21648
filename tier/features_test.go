package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFeatureEnabled_TrialLocksPaidFeatures(t *testing.T) {
	t.Parallel()

	for _, f := range Features() {
		min, ok := MinTier(f)
		assert.True(t, ok)
		if min >= Basic {
			assert.False(t, IsFeatureEnabled(Trial, f), "trial should not unlock %s", f)
		}
	}
}

func TestIsFeatureEnabled_PremiumUnlocksEverything(t *testing.T) {
	t.Parallel()

	for _, f := range Features() {
		assert.True(t, IsFeatureEnabled(Premium, f), "premium should unlock %s", f)
	}
}

func TestIsFeatureEnabled_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier    Tier
		feature Feature
		want    bool
	}{
		{Trial, ManualTrades, true},
		{Trial, RiskManagement, false},
		{Basic, TrailingStops, true},
		{Basic, BotControl, false},
		{Pro, BotControl, true},
		{Pro, AutoLotSizing, true},
		{Pro, SMCStrategy, false},
		{Premium, FullAutomation, true},
		{Premium, Feature("time_travel"), false},
		{Tier(42), ManualTrades, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tier.String()+"/"+string(tt.feature), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsFeatureEnabled(tt.tier, tt.feature))
		})
	}
}

func TestIsFeatureEnabledName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFeatureEnabledName("pro", "ai_mode"))
	assert.True(t, IsFeatureEnabledName("Premium", "break_retest"))
	assert.False(t, IsFeatureEnabledName("basic", "ai_mode"))
	assert.False(t, IsFeatureEnabledName("vip", "manual_trades"))
	assert.False(t, IsFeatureEnabledName("premium", "unknown"))
}

func TestEnabledFeaturesMonotonic(t *testing.T) {
	t.Parallel()

	prev := -1
	for _, tr := range All() {
		n := len(EnabledFeatures(tr))
		assert.Greater(t, n, prev)
		prev = n
	}
	assert.Len(t, EnabledFeatures(Premium), len(Features()))
	assert.Equal(t, []Feature{ManualTrades, PositionHelpers}, EnabledFeatures(Trial))
}

func TestFeaturesSorted(t *testing.T) {
	t.Parallel()

	fs := Features()
	for i := 1; i < len(fs); i++ {
		assert.Less(t, string(fs[i-1]), string(fs[i]))
	}
}
