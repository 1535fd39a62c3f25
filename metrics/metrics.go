package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render outcomes.
const (
	StatusOK          = "ok"
	StatusFilterError = "filter_error"
	StatusError       = "error"
)

var (
	renderHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablekit_render_latency",
			Help:    "Latency to render a table.",
			Buckets: prometheus.LinearBuckets(0.01, 0.05, 10),
		},
		[]string{"table", "status"},
	)

	renderedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablekit_rendered_rows",
			Help: "Count of rows serialized per table.",
		},
		[]string{"table"},
	)

	httpStatusCounters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablekit_http_status",
			Help: "Count of various http status.",
		},
		[]string{"status"},
	)
)

// InstrumentRender starts a render timer for table. Call the returned
// func with the outcome once the render finishes.
func InstrumentRender(table string) func(status string) time.Duration {
	start := time.Now()
	return func(status string) time.Duration {
		elapsed := time.Since(start)
		renderHistogram.WithLabelValues(table, status).Observe(elapsed.Seconds())
		return elapsed
	}
}

// RecordRows adds n serialized rows for table.
func RecordRows(table string, n int) {
	renderedRows.WithLabelValues(table).Add(float64(n))
}

// RecordHTTPStatus counts one response with code.
func RecordHTTPStatus(code int) {
	httpStatusCounters.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
