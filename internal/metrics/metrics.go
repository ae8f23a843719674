package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplace_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymplace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplace_class_registrations_total",
			Help: "Class registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	RegistrationCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymplace_class_registration_cancellations_total",
			Help: "Total number of class registration cancellations",
		},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymplace_check_ins_total",
			Help: "Total number of member check-ins",
		},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplace_member_signups_total",
			Help: "Member signups by channel and membership tier",
		},
		[]string{"channel", "tier"},
	)

	LogoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymplace_logouts_total",
			Help: "Total number of revoked access tokens",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(outcome string) {
	RegistrationsTotal.WithLabelValues(outcome).Inc()
}

func RecordRegistrationCancellation() {
	RegistrationCancellationsTotal.Inc()
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordSignup(channel, tier string) {
	SignupsTotal.WithLabelValues(channel, tier).Inc()
}

func RecordLogout() {
	LogoutsTotal.Inc()
}
