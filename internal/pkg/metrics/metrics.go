// Package metrics exposes Prometheus instrumentation for the shop service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShopMetrics holds the counters tracked by the order service and the
// script interpreter.
type ShopMetrics struct {
	OrdersPlaced  prometheus.Counter
	StatusChanges *prometheus.CounterVec
	ScriptLines   *prometheus.CounterVec
}

// NewShopMetrics creates and registers the shop counters on the given
// registerer. Pass prometheus.DefaultRegisterer in production wiring and a
// fresh registry in tests.
func NewShopMetrics(reg prometheus.Registerer) *ShopMetrics {
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shop",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Name:      "order_status_changes_total",
		Help:      "Total number of order status changes, by target status.",
	}, []string{"status"})
	scriptLines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Name:      "script_lines_total",
		Help:      "Total number of processed script lines, by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(ordersPlaced, statusChanges, scriptLines)

	return &ShopMetrics{
		OrdersPlaced:  ordersPlaced,
		StatusChanges: statusChanges,
		ScriptLines:   scriptLines,
	}
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
