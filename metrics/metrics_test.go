package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/fxdesk/tier"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(riskCalculationsCounter)
	ObserveCalculation()
	assert.Equal(t, before+1, testutil.ToFloat64(riskCalculationsCounter))

	ObserveGuarded("no_stop")
	assert.GreaterOrEqual(t, testutil.ToFloat64(riskGuardedCounter.WithLabelValues("no_stop")), 1.0)

	ObserveGateCheck(tier.AIMode, true)
	ObserveGateCheck(tier.AIMode, false)
	assert.GreaterOrEqual(t, testutil.ToFloat64(gateChecksCounter.WithLabelValues("ai_mode", "allowed")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(gateChecksCounter.WithLabelValues("ai_mode", "denied")), 1.0)

	ObserveConnectionTest(false)
	assert.GreaterOrEqual(t, testutil.ToFloat64(connectionTestsCounter.WithLabelValues("failed")), 1.0)
}

func TestRegistryGathers(t *testing.T) {
	ObserveCalculation()
	n, err := testutil.GatherAndCount(Registry, "fxdesk_risk_calculations_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGateCheckUnknownFeaturesShareOneSeries(t *testing.T) {
	ObserveGateCheck("warp_drive", false)
	before := testutil.CollectAndCount(gateChecksCounter)
	unknown := testutil.ToFloat64(gateChecksCounter.WithLabelValues(unknownFeature, "denied"))

	for _, f := range []tier.Feature{"junk_1", "junk_2", "../../etc", "", "AI_MODE"} {
		ObserveGateCheck(f, false)
	}

	assert.Equal(t, before, testutil.CollectAndCount(gateChecksCounter))
	assert.Equal(t, unknown+5, testutil.ToFloat64(gateChecksCounter.WithLabelValues(unknownFeature, "denied")))
}
