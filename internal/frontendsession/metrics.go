package frontendsession

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts session and comment outcomes; a nil *Metrics is a no-op
type Metrics struct {
	signins  *prometheus.CounterVec
	rejected prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frontsession_signin_total",
			Help: "Frontend signin attempts by result.",
		}, []string{"result"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frontsession_comment_rejected_total",
			Help: "Comments refused because they are limited to registered users.",
		}),
	}
	reg.MustRegister(m.signins, m.rejected)
	return m
}

func (m *Metrics) signin(result string) {
	if m == nil {
		return
	}
	m.signins.WithLabelValues(result).Inc()
}

func (m *Metrics) commentRejected() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}
