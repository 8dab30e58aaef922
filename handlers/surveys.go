// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/roi-survey/middleware"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/session"
)

// Messages returned by the by-name survey API
const (
	MsgMissingSurveyName = "Malformed request, missing surveyName request parameter."
	MsgMissingBody       = "Malformed request, missing content in request body."
)

type SurveyHandler struct {
	repo *repository.Repository
	sess *session.Controller
}

func NewSurveyHandler(repo *repository.Repository, sess *session.Controller) *SurveyHandler {
	return &SurveyHandler{repo: repo, sess: sess}
}

// ListSurveys handles GET /surveys
// Most recently modified first; the survey open in the session is flagged active.
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	activeID, editing := h.sess.ActiveID()
	surveys := h.repo.List()

	resp := models.ListSurveysResponse{
		SurveyNames: make([]string, 0, len(surveys)),
		Surveys:     make([]models.SurveySummary, 0, len(surveys)),
	}
	for _, s := range surveys {
		resp.SurveyNames = append(resp.SurveyNames, s.Name)
		resp.Surveys = append(resp.Surveys, models.SurveySummary{
			ID:           s.ID,
			Name:         s.Name,
			DateModified: s.DateModified,
			Modified:     humanize.Time(s.DateModified),
			Active:       editing && s.ID == activeID,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetSurvey handles GET /surveys/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey id")
		return
	}

	s, ok := h.repo.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// DeleteSurvey handles DELETE /surveys/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey id")
		return
	}
	if _, ok := h.repo.Get(id); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}

	if err := h.sess.DeleteRecord(id, confirmed(r)); err != nil {
		writeSessionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SurveyMessageResponse{
		Message: models.MsgSurveyDeleted,
	})
}

// DuplicateSurvey handles POST /surveys/{id}/duplicate
func (h *SurveyHandler) DuplicateSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey id")
		return
	}

	dup, err := h.sess.DuplicateRecord(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.SurveyMessageResponse{
		Survey:  &dup,
		Message: models.MsgSurveyDuplicated,
	})
}

// GetSurveyByName handles GET /survey?surveyName=
func (h *SurveyHandler) GetSurveyByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("surveyName")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgMissingSurveyName)
		return
	}

	s, ok := h.repo.FindByName(name)
	if !ok {
		middleware.JSONResponse(w, http.StatusNotFound, struct{}{})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// PutSurveyByName handles PUT /survey?surveyName=
// The body is the response map; it replaces the responses of the named
// survey, creating it if needed.
func (h *SurveyHandler) PutSurveyByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("surveyName")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgMissingSurveyName)
		return
	}

	var responses models.Responses
	err := middleware.ParseJSONBody(r, &responses)
	if errors.Is(err, io.EOF) || (err == nil && len(responses) == 0) {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgMissingBody)
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, created, err := h.repo.PutByName(name, responses)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	slog.Info("survey stored by name", "id", s.ID, "name", s.Name, "created", created)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	middleware.JSONResponse(w, status, s)
}
