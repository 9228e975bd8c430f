package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_bookings_total",
			Help: "Total number of class bookings",
		},
		[]string{"status"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_booking_cancellations_total",
			Help: "Total number of class booking cancellations",
		},
	)

	WorkoutsLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_workouts_logged_total",
			Help: "Total number of workout log entries recorded",
		},
	)

	GoalUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_goal_updates_total",
			Help: "Total number of goal mutations",
		},
		[]string{"action"},
	)

	PersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_persist_failures_total",
			Help: "Total number of failed collection writes",
		},
		[]string{"collection"},
	)

	StoreLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitclub_store_load_seconds",
			Help:    "Time taken to load persisted collections at startup",
			Buckets: prometheus.DefBuckets,
		},
	)

	SeedFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_seed_fallbacks_total",
			Help: "Collections that fell back to seed data during load",
		},
		[]string{"collection"},
	)

	NotificationsQueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_notifications_queued_total",
			Help: "Total number of store events queued for notification delivery",
		},
		[]string{"type", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordWorkoutLogged() {
	WorkoutsLoggedTotal.Inc()
}

func RecordGoalUpdate(action string) {
	GoalUpdatesTotal.WithLabelValues(action).Inc()
}

func RecordPersistFailure(collection string) {
	PersistFailuresTotal.WithLabelValues(collection).Inc()
}

func RecordSeedFallback(collection string) {
	SeedFallbacksTotal.WithLabelValues(collection).Inc()
}

func RecordNotificationQueued(eventType, status string) {
	NotificationsQueuedTotal.WithLabelValues(eventType, status).Inc()
}
