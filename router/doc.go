// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ROI survey API.

	mux := router.NewRouter(router.Deps{
		Schema:  questions,
		Repo:    repo,
		Session: sess,
		Metrics: collector,
	})

# Endpoints

Operational:

	GET /health
	GET /metrics - Prometheus text format

Questionnaire:

	GET /schema

Editing session:

	GET  /session
	POST /session/new
	POST /session/load/{id}
	POST /session/answer
	PUT  /session/responses
	POST /session/advance
	POST /session/retreat
	POST /session/save-progress
	POST /session/submit
	POST /session/continue

Saved surveys:

	GET    /surveys
	GET    /surveys/{id}
	DELETE /surveys/{id}
	POST   /surveys/{id}/duplicate
	GET    /survey?surveyName=
	PUT    /survey?surveyName=

All routes except health and metrics are wrapped with middleware.WithLogging.
*/
package router
