// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// Question type constants
type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeNumber   QuestionType = "number"
	TypeEmail    QuestionType = "email"
	TypeSelect   QuestionType = "select"
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
)

var questionTypes = []QuestionType{TypeText, TypeNumber, TypeEmail, TypeSelect, TypeRadio, TypeCheckbox}

func (t QuestionType) Valid() bool {
	for _, qt := range questionTypes {
		if t == qt {
			return true
		}
	}
	return false
}

// HasOptions reports whether the question is answered by picking options.
func (t QuestionType) HasOptions() bool {
	return t == TypeSelect || t == TypeRadio || t == TypeCheckbox
}

func (t *QuestionType) UnmarshalText(text []byte) error {
	qt := QuestionType(text)
	if !qt.Valid() {
		return fmt.Errorf("unknown question type %q", string(text))
	}
	*t = qt
	return nil
}

// Session state constants
const (
	StateNewDraft  = "new"
	StateEditing   = "editing"
	StateSubmitted = "submitted"
)

// Notification messages shown after sidebar and save actions
const (
	MsgSurveyCreated    = "New survey created!"
	MsgSurveyUpdated    = "Survey updated successfully!"
	MsgSurveyDeleted    = "Survey deleted"
	MsgSurveyDuplicated = "Survey duplicated"
)

// Schema types

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	ID        string       `json:"id"`
	Type      QuestionType `json:"type"`
	Label     string       `json:"label"`
	Required  bool         `json:"required"`
	Options   []Option     `json:"options,omitempty"`
	Min       *float64     `json:"min,omitempty"`
	Max       *float64     `json:"max,omitempty"`
	HelpText  string       `json:"helpText,omitempty"`
	Multiline bool         `json:"multiline,omitempty"`
}

type Section struct {
	Name      string     `json:"section"`
	Questions []Question `json:"questions"`
}

// Domain types

// Survey is a named, persisted snapshot of a response map.
// DateCreated never changes after creation and is never after DateModified.
type Survey struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Responses    Responses `json:"responses"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

func (s Survey) Clone() Survey {
	s.Responses = s.Responses.Clone()
	return s
}

// Request types

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      Answer `json:"value"`
}

type ReplaceResponsesRequest struct {
	Responses Responses `json:"responses"`
}

type SaveSurveyRequest struct {
	Name string `json:"name"`
}

// Response types

type SurveySummary struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateModified time.Time `json:"dateModified"`
	Modified     string    `json:"modified"` // humanized, e.g. "3 hours ago"
	Active       bool      `json:"active"`
}

type ListSurveysResponse struct {
	SurveyNames []string        `json:"surveyNames"`
	Surveys     []SurveySummary `json:"surveys"`
}

type SubmittedSummary struct {
	Created           time.Time `json:"created"`
	LastModified      time.Time `json:"lastModified"`
	QuestionsAnswered int       `json:"questionsAnswered"`
}

type SessionView struct {
	State             string            `json:"state"`
	ActiveSurveyID    *int64            `json:"activeSurveyId,omitempty"`
	Title             string            `json:"title"`
	Responses         Responses         `json:"responses"`
	HasUnsavedChanges bool              `json:"hasUnsavedChanges"`
	ActiveStep        int               `json:"activeStep"`
	StepCount         int               `json:"stepCount"`
	Section           string            `json:"section"`
	Errors            map[string]string `json:"errors,omitempty"`
	Summary           *SubmittedSummary `json:"summary,omitempty"`
}

type StepResponse struct {
	Valid   bool              `json:"valid"`
	Errors  map[string]string `json:"errors,omitempty"`
	Session SessionView       `json:"session"`
}

type SaveSurveyResponse struct {
	Survey  Survey      `json:"survey"`
	Message string      `json:"message"`
	Session SessionView `json:"session"`
}

type SchemaResponse struct {
	Sections []Section `json:"sections"`
}

type SurveyMessageResponse struct {
	Survey  *Survey `json:"survey,omitempty"`
	Message string  `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
