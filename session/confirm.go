// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "fmt"

// PromptKind identifies which confirmation the user is asked for.
type PromptKind int

const (
	PromptDiscard PromptKind = iota
	PromptDelete
)

// Confirmation texts
const (
	MsgDiscardForNew  = "You have unsaved changes. Do you want to discard them and start a new survey?"
	MsgDiscardForLoad = "You have unsaved changes. Do you want to discard them and load another survey?"
)

func deletePrompt(name string) Prompt {
	return Prompt{
		Kind:    PromptDelete,
		Message: fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", name),
	}
}

// Prompt is a question put to the user before a destructive transition.
type Prompt struct {
	Kind    PromptKind
	Message string
}

// Confirmer asks the user to confirm a prompt. Returning false aborts the
// operation that asked, leaving the session untouched.
type Confirmer interface {
	Confirm(p Prompt) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(p Prompt) bool

func (f ConfirmFunc) Confirm(p Prompt) bool { return f(p) }

var (
	// Accept confirms every prompt.
	Accept Confirmer = ConfirmFunc(func(Prompt) bool { return true })
	// Decline refuses every prompt.
	Decline Confirmer = ConfirmFunc(func(Prompt) bool { return false })
)

// Confirmed returns Accept when ok is true and Decline otherwise.
func Confirmed(ok bool) Confirmer {
	if ok {
		return Accept
	}
	return Decline
}

func confirm(c Confirmer, p Prompt) bool {
	return c != nil && c.Confirm(p)
}
