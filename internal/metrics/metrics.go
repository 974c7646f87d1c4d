package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scamlens_http_requests_total", Help: "HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "scamlens_http_request_duration_seconds", Help: "HTTP request latency", Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}},
		[]string{"method", "route"},
	)
	ReportsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scamlens_reports_submitted_total", Help: "Reports accepted"},
	)
	DuplicateReportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scamlens_reports_duplicate_total", Help: "Reports rejected by the unique constraint"},
	)
	ScansRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scamlens_scans_recorded_total", Help: "Scan snapshots recorded"},
	)
	VotesCastTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scamlens_votes_cast_total", Help: "Vote operations by target"},
		[]string{"target"},
	)
	DiscussionViewsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scamlens_discussion_views_total", Help: "Discussion detail reads"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ReportsSubmittedTotal,
		DuplicateReportsTotal,
		ScansRecordedTotal,
		VotesCastTotal,
		DiscussionViewsTotal,
	)
}

func IncReportSubmitted() { ReportsSubmittedTotal.Inc() }
func IncDuplicateReport() { DuplicateReportsTotal.Inc() }
func IncScanRecorded()    { ScansRecordedTotal.Inc() }
func IncDiscussionView()  { DiscussionViewsTotal.Inc() }

func IncVoteCast(target string) { VotesCastTotal.WithLabelValues(target).Inc() }

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
