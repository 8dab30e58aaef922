// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/roi-survey/ids"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/schema"
	"github.com/danielhkuo/roi-survey/validate"
)

var (
	ErrDeclined     = errors.New("confirmation declined")
	ErrNotFound     = errors.New("survey not found")
	ErrNameRequired = errors.New("survey name is required")
)

// Observer receives session events.
type Observer interface {
	SurveySaved(created bool)
	ValidationFailed(step int)
}

type nopObserver struct{}

func (nopObserver) SurveySaved(bool)     {}
func (nopObserver) ValidationFailed(int) {}

type Option func(*Controller)

func WithClock(clock ids.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithIDs(gen *ids.Generator) Option {
	return func(c *Controller) { c.ids = gen }
}

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// Controller is the editing session of the survey form: the draft
// responses, the saved survey they belong to (if any), unsaved-changes
// tracking and step navigation.
//
// The draft is always a copy; stored surveys change only on save.
type Controller struct {
	mu       sync.Mutex
	schema   *schema.Schema
	repo     *repository.Repository
	ids      *ids.Generator
	clock    ids.Clock
	observer Observer

	activeID  *int64 // nil in new-survey mode
	draft     models.Responses
	committed models.Responses // last saved or loaded responses
	dirty     bool
	step      int
	submitted bool
	errors    map[string]string
}

// New starts a session in new-survey mode on step 0.
func New(s *schema.Schema, repo *repository.Repository, opts ...Option) *Controller {
	c := &Controller{
		schema:   s,
		repo:     repo,
		ids:      repo.IDs(),
		clock:    ids.Now,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.activeID = nil
	c.draft = models.Responses{}
	c.committed = models.Responses{}
	c.dirty = false
	c.step = 0
	c.submitted = false
	c.errors = nil
}

// active resolves the weak reference to the survey being edited. If the
// survey is gone the session falls back to new-survey mode.
func (c *Controller) active() (models.Survey, bool) {
	if c.activeID == nil {
		return models.Survey{}, false
	}
	s, ok := c.repo.Get(*c.activeID)
	if !ok {
		slog.Warn("active survey disappeared, starting new", "id", *c.activeID)
		c.reset()
		return models.Survey{}, false
	}
	return s, true
}

// State returns models.StateNewDraft, StateEditing or StateSubmitted.
func (c *Controller) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *Controller) state() string {
	_, editing := c.active()
	switch {
	case c.submitted:
		return models.StateSubmitted
	case editing:
		return models.StateEditing
	}
	return models.StateNewDraft
}

// HasUnsavedChanges reports whether the draft differs from the last saved
// or loaded responses. Page-exit warnings key off this.
func (c *Controller) HasUnsavedChanges() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// StartNew discards the draft and enters new-survey mode. With unsaved
// changes the user must confirm; a declined prompt changes nothing.
func (c *Controller) StartNew(confirmer Confirmer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirty && !confirm(confirmer, Prompt{Kind: PromptDiscard, Message: MsgDiscardForNew}) {
		return ErrDeclined
	}
	c.reset()
	slog.Info("new survey started")
	return nil
}

// LoadRecord makes the saved survey id the one being edited, copying its
// responses into the draft. With unsaved changes the user must confirm.
func (c *Controller) LoadRecord(id int64, confirmer Confirmer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	if c.dirty && !confirm(confirmer, Prompt{Kind: PromptDiscard, Message: MsgDiscardForLoad}) {
		return ErrDeclined
	}

	c.reset()
	c.activeID = &s.ID
	c.draft = s.Responses.Clone()
	c.committed = s.Responses.Clone()
	slog.Info("survey loaded", "id", s.ID, "name", s.Name)
	return nil
}

// Answer sets one answer in the draft and clears that question's error.
func (c *Controller) Answer(questionID string, a models.Answer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft[questionID] = a.Clone()
	delete(c.errors, questionID)
	c.recompute()
}

// ReplaceResponses swaps in a complete response map, as sent by a form
// that tracks its own state.
func (c *Controller) ReplaceResponses(r models.Responses) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = r.Clone()
	c.recompute()
}

func (c *Controller) recompute() {
	c.dirty = !c.draft.Equal(c.committed)
}

// Advance validates the current step and moves to the next one if it is
// valid. On the last step a valid advance stays put; submitting is the
// caller's job.
func (c *Controller) Advance() validate.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.validateStep()
	if result.Valid && c.step < c.schema.Len()-1 {
		c.step++
	}
	return result
}

// Retreat moves one step back without validation, stopping at step 0.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step > 0 {
		c.step--
	}
	c.errors = nil
}

func (c *Controller) validateStep() validate.Result {
	section, _ := c.schema.Section(c.step)
	result := validate.Section(section, c.draft)
	if result.Valid {
		c.errors = nil
	} else {
		c.errors = result.Errors
		c.observer.ValidationFailed(c.step)
	}
	return result
}

// Submit validates the current step and, if valid, saves the draft under
// name. An invalid step returns the result with a zero survey and saves
// nothing.
func (c *Controller) Submit(name string) (models.Survey, validate.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.validateStep()
	if !result.Valid {
		return models.Survey{}, result, nil
	}
	s, err := c.save(name)
	return s, result, err
}

// SaveProgress saves the draft under name without validating anything, so
// incomplete surveys can be stored as drafts.
func (c *Controller) SaveProgress(name string) (models.Survey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(name)
}

// save builds the record and hands it to the repository. A storage error
// is returned, but the survey is already in the in-memory collection and
// the session moves on as if the save succeeded.
func (c *Controller) save(name string) (models.Survey, error) {
	existing, editing := c.active()

	name = strings.TrimSpace(name)
	if name == "" {
		if !editing {
			return models.Survey{}, ErrNameRequired
		}
		name = existing.Name
	}

	now := c.clock()
	record := models.Survey{
		Name:      name,
		Responses: c.draft.Clone(),
	}
	if editing {
		record.ID = existing.ID
		record.DateCreated = existing.DateCreated
		if now.Before(existing.DateCreated) {
			now = existing.DateCreated
		}
	} else {
		record.ID = c.ids.Next()
		record.DateCreated = now
	}
	record.DateModified = now

	saved, err := c.repo.Upsert(record)

	id := saved.ID
	c.activeID = &id
	c.committed = c.draft.Clone()
	c.dirty = false
	c.submitted = true
	c.errors = nil
	c.observer.SurveySaved(!editing)

	if err != nil {
		return saved, err
	}
	slog.Info("survey saved", "id", saved.ID, "name", saved.Name, "created", !editing)
	return saved, nil
}

// ContinueEditing leaves the submitted view and returns to the form with
// the draft and step unchanged.
func (c *Controller) ContinueEditing() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitted = false
}

// DeleteRecord removes a saved survey after the user confirms. Deleting
// the survey being edited resets the session to new-survey mode. Unknown
// ids are a no-op.
func (c *Controller) DeleteRecord(id int64, confirmer Confirmer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.repo.Get(id)
	if !ok {
		return nil
	}
	if !confirm(confirmer, deletePrompt(s.Name)) {
		return ErrDeclined
	}

	err := c.repo.Delete(id)
	if c.activeID != nil && *c.activeID == id {
		c.reset()
	}
	slog.Info("survey deleted", "id", id, "name", s.Name)
	return err
}

// DuplicateRecord stores a copy of a saved survey. The session is not
// affected.
func (c *Controller) DuplicateRecord(id int64) (models.Survey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.repo.Get(id)
	if !ok {
		return models.Survey{}, ErrNotFound
	}
	dup, err := c.repo.Duplicate(s)
	if err == nil {
		slog.Info("survey duplicated", "id", id, "copy_id", dup.ID)
	}
	return dup, err
}

// ActiveID returns the id of the survey being edited.
func (c *Controller) ActiveID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.active(); ok {
		return s.ID, true
	}
	return 0, false
}

// View returns a snapshot of the session for rendering.
func (c *Controller) View() models.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, editing := c.active()
	section, _ := c.schema.Section(c.step)
	v := models.SessionView{
		State:             c.state(),
		Title:             "New Survey",
		Responses:         c.draft.Clone(),
		HasUnsavedChanges: c.dirty,
		ActiveStep:        c.step,
		StepCount:         c.schema.Len(),
		Section:           section.Name,
	}
	if len(c.errors) > 0 {
		v.Errors = make(map[string]string, len(c.errors))
		for id, msg := range c.errors {
			v.Errors[id] = msg
		}
	}

	if editing {
		id := s.ID
		v.ActiveSurveyID = &id
		v.Title = s.Name
		if c.submitted {
			v.Summary = &models.SubmittedSummary{
				Created:           s.DateCreated,
				LastModified:      s.DateModified,
				QuestionsAnswered: len(s.Responses),
			}
		}
	}
	return v
}
