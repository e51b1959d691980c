package management

import (
	"errors"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	rejectionValidation = "validation"
	rejectionDateRange  = "date_range"
	rejectionConflict   = "conflict"
	rejectionNotFound   = "not_found"
	rejectionInternal   = "internal"
)

// Metrics of the management write path
type Metrics struct {
	rejections *prometheus.CounterVec
}

// NewMetrics registers the management metrics to reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booth_ads",
			Subsystem: "management",
			Name:      "rejections_total",
			Help:      "Number of rejected management requests by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.rejections)
	return m
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return rejectionValidation
	case errors.Is(err, ErrInvalidDateRange):
		return rejectionDateRange
	case errors.Is(err, adpolicy.ErrActiveConflict):
		return rejectionConflict
	case errors.Is(err, ErrNotFound):
		return rejectionNotFound
	default:
		return rejectionInternal
	}
}

func (m *Metrics) observeRejection(err error) {
	m.rejections.WithLabelValues(rejectionReason(err)).Inc()
}
