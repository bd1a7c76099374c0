// Package metrics holds the process-wide prometheus collectors. Everything
// is registered on the default registry and exposed via /metrics.
package metrics

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SeedRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "califraud_seed_runs_total",
		Help: "Seed runs by outcome (loaded, skipped, failed).",
	}, []string{"outcome"})

	SeedBatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "califraud_seed_batches_total",
		Help: "Committed insert batches across all seed runs.",
	})

	SeedCasesInsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "califraud_seed_cases_inserted_total",
		Help: "Case records inserted across all seed runs.",
	})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "califraud_http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(SeedRunsTotal, SeedBatchesTotal, SeedCasesInsertedTotal, HTTPRequestsTotal)
}

// Middleware counts every handled request under its registered route
// pattern, so /api/cases/:id stays a single series.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			HTTPRequestsTotal.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}
