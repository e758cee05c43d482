// Package metrics defines the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reviewpulse"

// ReviewsCreatedTotal counts persisted reviews by sentiment label.
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total reviews created, labeled by sentiment",
	},
	[]string{"sentiment"},
)

// Handler returns the http.Handler serving the default registry, which also
// carries the Go runtime and process collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}
