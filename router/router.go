// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/roi-survey/handlers"
	"github.com/danielhkuo/roi-survey/metrics"
	"github.com/danielhkuo/roi-survey/middleware"
	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/schema"
	"github.com/danielhkuo/roi-survey/session"
)

// Deps are the long-lived components the routes are served from.
// Metrics may be nil.
type Deps struct {
	Schema  *schema.Schema
	Repo    *repository.Repository
	Session *session.Controller
	Metrics *metrics.Collector
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(deps.Session, deps.Schema)
	surveyHandler := handlers.NewSurveyHandler(deps.Repo, deps.Session)
	schemaHandler := handlers.NewSchemaHandler(deps.Schema)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Questionnaire definition
	mux.HandleFunc("GET /schema", middleware.WithLogging(schemaHandler.GetSchema))

	// Editing session
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /session/new", middleware.WithLogging(sessionHandler.StartNew))
	mux.HandleFunc("POST /session/load/{id}", middleware.WithLogging(sessionHandler.LoadSurvey))
	mux.HandleFunc("POST /session/answer", middleware.WithLogging(sessionHandler.Answer))
	mux.HandleFunc("PUT /session/responses", middleware.WithLogging(sessionHandler.ReplaceResponses))
	mux.HandleFunc("POST /session/advance", middleware.WithLogging(sessionHandler.Advance))
	mux.HandleFunc("POST /session/retreat", middleware.WithLogging(sessionHandler.Retreat))
	mux.HandleFunc("POST /session/save-progress", middleware.WithLogging(sessionHandler.SaveProgress))
	mux.HandleFunc("POST /session/submit", middleware.WithLogging(sessionHandler.Submit))
	mux.HandleFunc("POST /session/continue", middleware.WithLogging(sessionHandler.ContinueEditing))

	// Saved surveys
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.ListSurveys))
	mux.HandleFunc("GET /surveys/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("DELETE /surveys/{id}", middleware.WithLogging(surveyHandler.DeleteSurvey))
	mux.HandleFunc("POST /surveys/{id}/duplicate", middleware.WithLogging(surveyHandler.DuplicateSurvey))

	// Saved surveys by name
	mux.HandleFunc("GET /survey", middleware.WithLogging(surveyHandler.GetSurveyByName))
	mux.HandleFunc("PUT /survey", middleware.WithLogging(surveyHandler.PutSurveyByName))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("roi-survey API v1"))
	})

	return mux
}
