package metrics

import "github.com/prometheus/client_golang/prometheus"

// StorefrontMetrics counts domain events: cart mutations and checkout hand-offs.
type StorefrontMetrics struct {
	cartOps     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewStorefrontMetrics registers the domain counters on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation and outcome.",
	}, []string{"operation", "outcome"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submissions_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(cartOps, submissions)
	return &StorefrontMetrics{
		cartOps:     cartOps,
		submissions: submissions,
	}
}

// IncCartOp increments the cart operation counter.
func (m *StorefrontMetrics) IncCartOp(operation, outcome string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// IncSubmission increments the checkout submission counter.
func (m *StorefrontMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}
