// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roi_survey"

// Collector owns a private Prometheus registry with the survey metrics.
// All methods are safe on a nil *Collector, which records nothing.
type Collector struct {
	registry *prometheus.Registry

	surveysSaved       *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	flushFailures      prometheus.Counter
	surveysStored      prometheus.Gauge
	httpRequests       *prometheus.CounterVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		surveysSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surveys_saved_total",
			Help:      "Surveys saved, by whether the save created or updated a record",
		}, []string{"mode"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Blocked advance or submit attempts, by step index",
		}, []string{"step"}),
		flushFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_flush_failures_total",
			Help:      "Failed writes of the survey collection to storage",
		}),
		surveysStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "surveys_stored",
			Help:      "Number of surveys in the collection",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and status code",
		}, []string{"method", "status"}),
	}
	reg.MustRegister(c.surveysSaved, c.validationFailures, c.flushFailures, c.surveysStored, c.httpRequests)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) SurveySaved(created bool) {
	if c == nil {
		return
	}
	mode := "updated"
	if created {
		mode = "created"
	}
	c.surveysSaved.WithLabelValues(mode).Inc()
}

func (c *Collector) ValidationFailed(step int) {
	if c == nil {
		return
	}
	c.validationFailures.WithLabelValues(strconv.Itoa(step)).Inc()
}

func (c *Collector) FlushFailed() {
	if c == nil {
		return
	}
	c.flushFailures.Inc()
}

func (c *Collector) CollectionSize(n int) {
	if c == nil {
		return
	}
	c.surveysStored.Set(float64(n))
}

func (c *Collector) RequestServed(method string, status int) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
