package lookup

import "github.com/prometheus/client_golang/prometheus"

// Lookup outcomes recorded by Metrics.
const (
	outcomeCurated = "curated"
	outcomeAI      = "ai"
	outcomeFailed  = "failed"
)

// Metrics counts lookups by outcome. A nil *Metrics records nothing.
type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics registers the lookup collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viovio",
			Subsystem: "lookup",
			Name:      "resolutions_total",
			Help:      "Lookups by outcome: curated, ai or failed.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.lookups)
	return m
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}

// WithMetrics attaches m to the service and returns it.
func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}
