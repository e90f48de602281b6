package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	otpIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "otp_issued_total",
			Help: "Total number of OTP codes issued",
		},
	)

	otpVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_verifications_total",
			Help: "Total number of OTP verification attempts",
		},
		[]string{"result"},
	)

	newslettersQueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsletters_queued_total",
			Help: "Total number of newsletters queued for dispatch",
		},
	)

	newsletterDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_dispatches_total",
			Help: "Total number of completed newsletter dispatches",
		},
		[]string{"status"},
	)

	subscriptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_events_total",
			Help: "Total number of subscribe/unsubscribe events",
		},
		[]string{"event"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordOTPIssued() {
	otpIssued.Inc()
}

func RecordOTPVerification(result string) {
	otpVerifications.WithLabelValues(result).Inc()
}

func RecordNewsletterQueued() {
	newslettersQueued.Inc()
}

func RecordNewsletterDispatch(status string) {
	newsletterDispatches.WithLabelValues(status).Inc()
}

func RecordSubscriptionEvent(event string) {
	subscriptions.WithLabelValues(event).Inc()
}
