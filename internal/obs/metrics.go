package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// PricingMetrics groups Prometheus collectors for discount evaluation.
type PricingMetrics struct {
	Evaluations *prometheus.CounterVec
	Savings     *prometheus.CounterVec
}

// NewPricingMetrics registers and returns discount metrics collectors. Collectors that
// are already registered with reg are reused.
func NewPricingMetrics(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_evaluations_total",
			Help:      "Count of discount evaluations by rule kind and outcome.",
		}, []string{"discount", "result"}),
		Savings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_savings_minor_total",
			Help:      "Amount taken off basket totals by accepted discounts, in minor currency units.",
		}, []string{"discount"}),
	}
	mustRegisterCounterVec(reg, &m.Evaluations)
	mustRegisterCounterVec(reg, &m.Savings)
	return m
}

// ObserveDiscount implements cart.Recorder.
func (m *PricingMetrics) ObserveDiscount(kind string, accepted bool, saved pricing.Money) {
	if m == nil {
		return
	}
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.Evaluations.WithLabelValues(kind, result).Inc()
	if accepted && saved > 0 {
		m.Savings.WithLabelValues(kind).Add(float64(saved))
	}
}

func mustRegisterCounterVec(reg prometheus.Registerer, counter **prometheus.CounterVec) {
	if err := reg.Register(*counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				*counter = existing
			}
			return
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
}
