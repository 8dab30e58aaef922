// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the editing session of the multi-step survey
form.

# States

A Controller is always in one of three states:

	new        no saved survey behind the draft
	editing    the draft belongs to a saved survey (weak reference by id)
	submitted  the post-save confirmation view

	ctrl := session.New(schema.Default(), repo)

# Transitions

	StartNew(confirmer)         → new (asks to discard unsaved changes)
	LoadRecord(id, confirmer)   → editing (asks to discard unsaved changes)
	Answer / ReplaceResponses   draft changes, unsaved-changes recomputed
	Advance()                   validates the current step, then step+1
	Retreat()                   step-1, no validation, floored at 0
	Submit(name)                validates the current step, then saves → submitted
	SaveProgress(name)          saves without validation → submitted
	ContinueEditing()           submitted → editing/new, draft untouched
	DeleteRecord(id, confirmer) deleting the active survey resets to new

# Confirmation

Discard and delete prompts go through a Confirmer. A declined prompt (or a
nil Confirmer) aborts the operation with ErrDeclined and changes nothing:

	err := ctrl.StartNew(session.ConfirmFunc(func(p session.Prompt) bool {
		return askUser(p.Message)
	}))

# Saving

New surveys get an id and both timestamps from the session; edits keep
the id and DateCreated and refresh DateModified. If storage fails the
survey still lands in the in-memory collection, the session moves to
submitted, and the storage error is returned for the caller to report.
*/
package session
