// SPDX-License-Identifier: MIT

package openapi_server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsController exposes the collected metrics in the prometheus text format.
type MetricsController struct {
	handler http.Handler
}

func NewMetricsController(gatherer prometheus.Gatherer) Router {
	return &MetricsController{handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})}
}

// Routes returns all of the api route for the MetricsController
func (c *MetricsController) Routes() Routes {
	return Routes{
		{
			"GetMetrics",
			http.MethodGet,
			"/metrics",
			c.handler.ServeHTTP,
		},
	}
}
