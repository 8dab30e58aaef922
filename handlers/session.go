// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/roi-survey/middleware"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/schema"
	"github.com/danielhkuo/roi-survey/session"
	"github.com/danielhkuo/roi-survey/validate"
)

type SessionHandler struct {
	sess   *session.Controller
	schema *schema.Schema
}

func NewSessionHandler(sess *session.Controller, s *schema.Schema) *SessionHandler {
	return &SessionHandler{sess: sess, schema: s}
}

// confirmed reads the ?confirm= query flag. Anything unparseable declines.
func confirmed(r *http.Request) session.Confirmer {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return session.Confirmed(ok)
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeSessionError maps controller errors to status codes. Storage
// failures surface as 507 since the change is kept in memory.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrDeclined):
		middleware.ErrorResponse(w, http.StatusConflict, "Confirmation required, retry with confirm=true")
	case errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
	case errors.Is(err, session.ErrNameRequired):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Survey name is required")
	default:
		slog.Error("survey storage failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInsufficientStorage, err.Error())
	}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// StartNew handles POST /session/new
func (h *SessionHandler) StartNew(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.StartNew(confirmed(r)); err != nil {
		writeSessionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// LoadSurvey handles POST /session/load/{id}
func (h *SessionHandler) LoadSurvey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey id")
		return
	}
	if err := h.sess.LoadRecord(id, confirmed(r)); err != nil {
		writeSessionError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// Answer handles POST /session/answer
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.QuestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "questionId is required")
		return
	}
	if _, ok := h.schema.Question(req.QuestionID); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown question: "+req.QuestionID)
		return
	}

	h.sess.Answer(req.QuestionID, req.Value)
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// ReplaceResponses handles PUT /session/responses
func (h *SessionHandler) ReplaceResponses(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceResponsesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	for id := range req.Responses {
		if _, ok := h.schema.Question(id); !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown question: "+id)
			return
		}
	}

	h.sess.ReplaceResponses(req.Responses)
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

func (h *SessionHandler) stepResponse(w http.ResponseWriter, result validate.Result) {
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	middleware.JSONResponse(w, status, models.StepResponse{
		Valid:   result.Valid,
		Errors:  result.Errors,
		Session: h.sess.View(),
	})
}

// Advance handles POST /session/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.stepResponse(w, h.sess.Advance())
}

// Retreat handles POST /session/retreat
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.sess.Retreat()
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// SaveProgress handles POST /session/save-progress
func (h *SessionHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req models.SaveSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, editing := h.sess.ActiveID()
	saved, err := h.sess.SaveProgress(req.Name)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	h.savedResponse(w, saved, !editing)
}

// Submit handles POST /session/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SaveSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, editing := h.sess.ActiveID()
	saved, result, err := h.sess.Submit(req.Name)
	if !result.Valid {
		h.stepResponse(w, result)
		return
	}
	if err != nil {
		writeSessionError(w, err)
		return
	}
	h.savedResponse(w, saved, !editing)
}

func (h *SessionHandler) savedResponse(w http.ResponseWriter, saved models.Survey, created bool) {
	status, msg := http.StatusOK, models.MsgSurveyUpdated
	if created {
		status, msg = http.StatusCreated, models.MsgSurveyCreated
	}
	middleware.JSONResponse(w, status, models.SaveSurveyResponse{
		Survey:  saved,
		Message: msg,
		Session: h.sess.View(),
	})
}

// ContinueEditing handles POST /session/continue
func (h *SessionHandler) ContinueEditing(w http.ResponseWriter, r *http.Request) {
	h.sess.ContinueEditing()
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}
