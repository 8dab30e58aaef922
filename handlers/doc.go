// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ROI survey API.

# Handler Types

Each handler is a struct holding the components it serves:

  - SessionHandler: the editing session (answers, steps, save, submit)
  - SurveyHandler: saved surveys (sidebar list, delete, duplicate, by-name API)
  - SchemaHandler: the questionnaire definition

	sessionHandler := handlers.NewSessionHandler(sess, schema)
	surveyHandler := handlers.NewSurveyHandler(repo, sess)

# Editing Session

There is one session per server. Every session endpoint returns the
resulting models.SessionView so the form can re-render from it.

	POST /session/answer   → Answer (one question)
	PUT  /session/responses → ReplaceResponses (whole map)
	POST /session/advance  → Advance (422 with field errors if the step is invalid)
	POST /session/retreat  → Retreat
	POST /session/submit   → Submit (validates the current step, then saves)
	POST /session/save-progress → SaveProgress (saves without validation)

A save answers 201 when it created a survey and 200 when it updated the one
being edited.

# Confirmations

Discarding unsaved changes and deleting a survey need the user's consent.
The client passes it as ?confirm=true; without it the request answers 409
and nothing changes:

	POST /session/new?confirm=true
	POST /session/load/{id}?confirm=true
	DELETE /surveys/{id}?confirm=true

# Storage Failures

When the store rejects a write the change is still held in memory and the
request answers 507 Insufficient Storage.
*/
package handlers
