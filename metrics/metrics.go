// Package metrics holds the Prometheus collectors the API and CLI update.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rustyeddy/fxdesk/tier"
)

const unknownFeature = "unknown"

var (
	riskCalculationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fxdesk_risk_calculations_total",
		Help: "position-size calculations served",
	})

	riskGuardedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fxdesk_risk_guarded_total",
		Help: "calculations whose lot size was forced to zero, by reason",
	}, []string{"reason"})

	gateChecksCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fxdesk_gate_checks_total",
		Help: "feature gate decisions, by feature and result",
	}, []string{"feature", "result"})

	connectionTestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fxdesk_connection_tests_total",
		Help: "broker connection tests, by result",
	}, []string{"result"})
)

// Registry is the registry the collectors live in; /metrics serves it.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		riskCalculationsCounter,
		riskGuardedCounter,
		gateChecksCounter,
		connectionTestsCounter,
	)
}

func ObserveCalculation() {
	riskCalculationsCounter.Inc()
}

// ObserveGuarded records a calculation that returned a zero lot size;
// reason is "no_stop", "no_pip_value" or "no_risk".
func ObserveGuarded(reason string) {
	riskGuardedCounter.WithLabelValues(reason).Inc()
}

// ObserveGateCheck counts a gate decision. Features outside the table share
// the "unknown" label so callers cannot mint new series.
func ObserveGateCheck(feature tier.Feature, enabled bool) {
	label := string(feature)
	if _, ok := tier.MinTier(feature); !ok {
		label = unknownFeature
	}
	result := "denied"
	if enabled {
		result = "allowed"
	}
	gateChecksCounter.WithLabelValues(label, result).Inc()
}

func ObserveConnectionTest(ok bool) {
	result := "failed"
	if ok {
		result = "ok"
	}
	connectionTestsCounter.WithLabelValues(result).Inc()
}
