// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request and response types of the
survey API.

# Answers

An Answer is a string, a number or a list of strings. Numbers keep the
literal they were given and encode back to JSON numbers:

	models.TextAnswer("Acme")
	models.NumberAnswer(250)
	models.ListAnswer("productivity", "quality")

Responses maps question ids to answers.

# Questionnaire

Section and Question describe the form. Question types are text, number,
email, select, radio and checkbox; only the choice types carry options.

# Surveys

A Survey is a saved, named set of responses with a numeric id and
creation and modification times. It encodes to the same JSON shape the
browser form keeps in local storage.

# Session States

	StateNewDraft  = "new"
	StateEditing   = "editing"
	StateSubmitted = "submitted"
*/
package models
