// Package metrics defines the Prometheus instruments of the billing desk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BillingMetrics records cart activity and payments.
type BillingMetrics struct {
	cartMutations    *prometheus.CounterVec
	salesRecorded    *prometheus.CounterVec
	saleAmount       prometheus.Histogram
	paymentsRejected prometheus.Counter
}

// NewBillingMetrics registers the billing metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	if reg == nil {
		return &BillingMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	salesRecorded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_sales_recorded_total",
		Help: "Sales recorded, by durability of the write.",
	}, []string{"durability"})
	saleAmount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "billing_sale_amount_rupees",
		Help:    "Grand total of recorded sales.",
		Buckets: []float64{500, 1000, 5000, 10000, 25000, 50000, 100000, 250000},
	})
	paymentsRejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "billing_payments_rejected_total",
		Help: "Payment attempts refused because the bill total was not positive.",
	})
	reg.MustRegister(cartMutations, salesRecorded, saleAmount, paymentsRejected)
	return &BillingMetrics{
		cartMutations:    cartMutations,
		salesRecorded:    salesRecorded,
		saleAmount:       saleAmount,
		paymentsRejected: paymentsRejected,
	}
}

// IncCartMutation counts one cart change of the named kind.
func (m *BillingMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// ObserveSale records a sale and how durably it was written.
func (m *BillingMetrics) ObserveSale(durability string, amount float64) {
	if m == nil || m.salesRecorded == nil {
		return
	}
	m.salesRecorded.WithLabelValues(normalizeLabel(durability)).Inc()
	m.saleAmount.Observe(amount)
}

// IncRejectedPayment counts a refused payment attempt.
func (m *BillingMetrics) IncRejectedPayment() {
	if m == nil || m.paymentsRejected == nil {
		return
	}
	m.paymentsRejected.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
