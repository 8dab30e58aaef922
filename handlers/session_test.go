// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/storage"
	"github.com/danielhkuo/roi-survey/testutil"
	"github.com/danielhkuo/roi-survey/validate"
)

func newSessionHandler(t *testing.T) (*SessionHandler, *testutil.App) {
	t.Helper()
	app := testutil.NewTestApp(t, nil)
	return NewSessionHandler(app.Session, app.Schema), app
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestGetSession_NewSurvey(t *testing.T) {
	h, _ := newSessionHandler(t)

	w := httptest.NewRecorder()
	h.GetSession(w, testutil.MakeRequest("GET", "/session", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var view models.SessionView
	testutil.AssertJSON(t, w, &view)

	if view.State != models.StateNewDraft {
		t.Errorf("Expected state %q, got %q", models.StateNewDraft, view.State)
	}
	if view.Title != "New Survey" {
		t.Errorf("Expected title 'New Survey', got %q", view.Title)
	}
	if view.ActiveSurveyID != nil {
		t.Error("Expected no active survey")
	}
	if view.StepCount != 5 || view.Section != "Company Information" {
		t.Errorf("Unexpected step info: %d %q", view.StepCount, view.Section)
	}
}

func TestAnswer(t *testing.T) {
	testCases := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "text answer",
			body:           map[string]interface{}{"questionId": "company_name", "value": "Acme"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "number answer",
			body:           map[string]interface{}{"questionId": "employee_count", "value": 12},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list answer",
			body:           map[string]interface{}{"questionId": "benefit_areas", "value": []string{"productivity"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing question id",
			body:           map[string]interface{}{"value": "Acme"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown question",
			body:           map[string]interface{}{"questionId": "favourite_colour", "value": "blue"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "object value",
			body:           map[string]interface{}{"questionId": "company_name", "value": map[string]string{"a": "b"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newSessionHandler(t)

			w := httptest.NewRecorder()
			h.Answer(w, testutil.MakeRequest("POST", "/session/answer", tc.body, nil))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var view models.SessionView
			testutil.AssertJSON(t, w, &view)
			if !view.HasUnsavedChanges {
				t.Error("Expected unsaved changes after answering")
			}
		})
	}
}

func TestAdvance_InvalidStep(t *testing.T) {
	h, _ := newSessionHandler(t)

	w := httptest.NewRecorder()
	h.Advance(w, testutil.MakeRequest("POST", "/session/advance", nil, nil))

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
	var resp models.StepResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Valid {
		t.Error("Expected invalid step")
	}
	if resp.Errors["company_name"] != validate.MsgRequired {
		t.Errorf("Expected required error on company_name, got %v", resp.Errors)
	}
	if resp.Session.ActiveStep != 0 {
		t.Errorf("Expected to stay on step 0, got %d", resp.Session.ActiveStep)
	}
}

func TestAdvanceAndRetreat(t *testing.T) {
	h, app := newSessionHandler(t)
	app.Session.ReplaceResponses(testutil.CompanyStep("Acme"))

	w := httptest.NewRecorder()
	h.Advance(w, testutil.MakeRequest("POST", "/session/advance", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StepResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Valid || resp.Session.ActiveStep != 1 {
		t.Errorf("Expected valid advance to step 1, got %+v", resp)
	}

	w = httptest.NewRecorder()
	h.Retreat(w, testutil.MakeRequest("POST", "/session/retreat", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.SessionView
	testutil.AssertJSON(t, w, &view)
	if view.ActiveStep != 0 {
		t.Errorf("Expected step 0 after retreat, got %d", view.ActiveStep)
	}
}

func TestReplaceResponses(t *testing.T) {
	h, _ := newSessionHandler(t)

	body := map[string]interface{}{"responses": map[string]interface{}{
		"company_name": "Acme",
		"risks":        "none",
	}}
	w := httptest.NewRecorder()
	h.ReplaceResponses(w, testutil.MakeRequest("PUT", "/session/responses", body, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.SessionView
	testutil.AssertJSON(t, w, &view)
	if len(view.Responses) != 2 {
		t.Errorf("Expected 2 responses, got %v", view.Responses)
	}

	bad := map[string]interface{}{"responses": map[string]interface{}{"nope": "x"}}
	w = httptest.NewRecorder()
	h.ReplaceResponses(w, testutil.MakeRequest("PUT", "/session/responses", bad, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmit_CreatesThenUpdates(t *testing.T) {
	h, app := newSessionHandler(t)
	app.Session.ReplaceResponses(testutil.CompanyStep("Acme"))

	w := httptest.NewRecorder()
	h.Submit(w, testutil.MakeRequest("POST", "/session/submit", models.SaveSurveyRequest{Name: "Acme Q1"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.SaveSurveyResponse
	testutil.AssertJSON(t, w, &created)
	if created.Message != models.MsgSurveyCreated {
		t.Errorf("Expected message %q, got %q", models.MsgSurveyCreated, created.Message)
	}
	if created.Survey.Name != "Acme Q1" || created.Survey.ID <= 0 {
		t.Errorf("Unexpected survey: %+v", created.Survey)
	}
	if created.Session.State != models.StateSubmitted || created.Session.Summary == nil {
		t.Errorf("Expected submitted session with summary, got %+v", created.Session)
	}
	if created.Session.Summary.QuestionsAnswered != 4 {
		t.Errorf("Expected 4 answered questions, got %d", created.Session.Summary.QuestionsAnswered)
	}

	w = httptest.NewRecorder()
	h.ContinueEditing(w, testutil.MakeRequest("POST", "/session/continue", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	app.Session.Answer("risks", models.TextAnswer("budget"))

	// empty name keeps the current one
	w = httptest.NewRecorder()
	h.Submit(w, testutil.MakeRequest("POST", "/session/submit", models.SaveSurveyRequest{}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.SaveSurveyResponse
	testutil.AssertJSON(t, w, &updated)
	if updated.Message != models.MsgSurveyUpdated {
		t.Errorf("Expected message %q, got %q", models.MsgSurveyUpdated, updated.Message)
	}
	if updated.Survey.ID != created.Survey.ID || updated.Survey.Name != "Acme Q1" {
		t.Errorf("Expected same survey updated, got %+v", updated.Survey)
	}
	if app.Repo.Len() != 1 {
		t.Errorf("Expected 1 stored survey, got %d", app.Repo.Len())
	}
}

func TestSubmit_Errors(t *testing.T) {
	t.Run("invalid step", func(t *testing.T) {
		h, app := newSessionHandler(t)

		w := httptest.NewRecorder()
		h.Submit(w, testutil.MakeRequest("POST", "/session/submit", models.SaveSurveyRequest{Name: "X"}, nil))
		testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
		if app.Repo.Len() != 0 {
			t.Error("Expected nothing saved")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		h, app := newSessionHandler(t)
		app.Session.ReplaceResponses(testutil.CompanyStep("Acme"))

		w := httptest.NewRecorder()
		h.Submit(w, testutil.MakeRequest("POST", "/session/submit", models.SaveSurveyRequest{Name: "   "}, nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newSessionHandler(t)

		req := httptest.NewRequest("POST", "/session/submit", nil)
		w := httptest.NewRecorder()
		h.Submit(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestSaveProgress_SkipsValidation(t *testing.T) {
	h, app := newSessionHandler(t)
	app.Session.Answer("company_name", models.TextAnswer("Half done"))

	w := httptest.NewRecorder()
	h.SaveProgress(w, testutil.MakeRequest("POST", "/session/save-progress", models.SaveSurveyRequest{Name: "Draft"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SaveSurveyResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Session.HasUnsavedChanges {
		t.Error("Expected no unsaved changes after save")
	}
	if _, ok := app.Repo.Get(resp.Survey.ID); !ok {
		t.Error("Expected survey in repository")
	}
}

func TestSaveProgress_StorageFull(t *testing.T) {
	app := testutil.NewTestApp(t, nil)
	h := NewSessionHandler(app.Session, app.Schema)
	app.Store.(*storage.MemoryStore).SetQuota(10)
	app.Session.Answer("company_name", models.TextAnswer("Acme"))

	w := httptest.NewRecorder()
	h.SaveProgress(w, testutil.MakeRequest("POST", "/session/save-progress", models.SaveSurveyRequest{Name: "Acme"}, nil))
	testutil.AssertStatus(t, w, http.StatusInsufficientStorage)

	if app.Repo.Len() != 1 {
		t.Errorf("Expected survey kept in memory, got %d", app.Repo.Len())
	}
}

func TestStartNew_Confirmation(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		expectedDirty  bool
	}{
		{"no confirmation", "/session/new", http.StatusConflict, true},
		{"declined", "/session/new?confirm=false", http.StatusConflict, true},
		{"garbage flag", "/session/new?confirm=maybe", http.StatusConflict, true},
		{"confirmed", "/session/new?confirm=true", http.StatusOK, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, app := newSessionHandler(t)
			app.Session.Answer("company_name", models.TextAnswer("Acme"))

			w := httptest.NewRecorder()
			h.StartNew(w, testutil.MakeRequest("POST", tc.path, nil, nil))
			testutil.AssertStatus(t, w, tc.expectedStatus)

			if app.Session.HasUnsavedChanges() != tc.expectedDirty {
				t.Errorf("Expected unsaved changes %v", tc.expectedDirty)
			}
		})
	}
}

func TestStartNew_CleanSessionNeedsNoConfirmation(t *testing.T) {
	h, _ := newSessionHandler(t)

	w := httptest.NewRecorder()
	h.StartNew(w, testutil.MakeRequest("POST", "/session/new", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestLoadSurvey(t *testing.T) {
	h, app := newSessionHandler(t)
	saved := testutil.CreateTestSurvey(t, app.Repo, "Acme", testutil.CompanyStep("Acme"))

	testCases := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"invalid id", "abc", http.StatusBadRequest},
		{"zero id", "0", http.StatusBadRequest},
		{"unknown id", "42", http.StatusNotFound},
		{"existing", formatID(saved.ID), http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/session/load/"+tc.id, nil, nil)
			req.SetPathValue("id", tc.id)
			w := httptest.NewRecorder()
			h.LoadSurvey(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var view models.SessionView
			testutil.AssertJSON(t, w, &view)
			if view.State != models.StateEditing || view.Title != "Acme" {
				t.Errorf("Expected editing 'Acme', got %q %q", view.State, view.Title)
			}
			if view.ActiveSurveyID == nil || *view.ActiveSurveyID != saved.ID {
				t.Error("Expected active survey id to be set")
			}
			if !view.Responses.Equal(saved.Responses) {
				t.Errorf("Expected responses %v, got %v", saved.Responses, view.Responses)
			}
		})
	}
}
