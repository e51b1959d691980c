package gallery

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	requestResultOK         = "ok"
	requestResultEmpty      = "empty"
	requestResultFetchError = "fetch_error"
)

// Metrics of the gallery read path
type Metrics struct {
	requests *prometheus.CounterVec
	excluded prometheus.Gauge
}

// NewMetrics registers the gallery metrics to reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booth_ads",
			Subsystem: "gallery",
			Name:      "requests_total",
			Help:      "Number of gallery ad selections by result",
		}, []string{"result"}),

		excluded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "booth_ads",
			Subsystem: "gallery",
			Name:      "excluded_records",
			Help:      "Number of unclassifiable records in the last gallery selection",
		}),
	}
	reg.MustRegister(m.requests, m.excluded)
	return m
}

func (m *Metrics) observeRequest(result string) {
	m.requests.WithLabelValues(result).Inc()
}

func (m *Metrics) observeExcluded(n int) {
	m.excluded.Set(float64(n))
}
