// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus metrics for the survey service.

The collector uses its own registry rather than the global default:

	m := metrics.New()
	mux.Handle("GET /metrics", m.Handler())

# Metrics

  - roi_survey_surveys_saved_total{mode}: created or updated records
  - roi_survey_validation_failures_total{step}: blocked advance/submit
  - roi_survey_storage_flush_failures_total: failed collection writes
  - roi_survey_surveys_stored: collection size after the last flush
  - roi_survey_http_requests_total{method,status}

The repository and the session controller report through small observer
interfaces that *Collector satisfies.
*/
package metrics
