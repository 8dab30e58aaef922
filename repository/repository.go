// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/danielhkuo/roi-survey/ids"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/storage"
)

// DefaultKey is the storage key holding the survey collection.
const DefaultKey = "roiSurveys"

// CopySuffix is appended to the name of a duplicated survey.
const CopySuffix = " (Copy)"

// Observer receives persistence events.
type Observer interface {
	FlushFailed()
	CollectionSize(n int)
}

type nopObserver struct{}

func (nopObserver) FlushFailed()       {}
func (nopObserver) CollectionSize(int) {}

type Option func(*Repository)

// WithClock sets the clock used to stamp duplicated surveys.
func WithClock(clock ids.Clock) Option {
	return func(r *Repository) { r.clock = clock }
}

// WithIDs sets the id generator used for duplicated surveys.
func WithIDs(gen *ids.Generator) Option {
	return func(r *Repository) { r.ids = gen }
}

func WithObserver(o Observer) Option {
	return func(r *Repository) { r.observer = o }
}

// Repository is the collection of saved surveys. The in-memory collection
// is the source of truth; every mutation writes the whole collection to
// the store under one key.
type Repository struct {
	mu       sync.Mutex
	store    storage.Store
	key      string
	clock    ids.Clock
	ids      *ids.Generator
	observer Observer

	// insertion order
	surveys []models.Survey
}

// New loads the collection stored under key. Unreadable or malformed data
// yields an empty collection.
func New(store storage.Store, key string, opts ...Option) *Repository {
	if key == "" {
		key = DefaultKey
	}
	r := &Repository{
		store:    store,
		key:      key,
		clock:    ids.Now,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.ids == nil {
		r.ids = ids.NewGenerator(r.clock)
	}

	r.surveys = r.load()
	for _, s := range r.surveys {
		r.ids.Observe(s.ID)
	}
	r.observer.CollectionSize(len(r.surveys))
	return r
}

func (r *Repository) load() []models.Survey {
	data, ok, err := r.store.Get(r.key)
	if err != nil {
		slog.Warn("survey storage unreadable, starting empty", "key", r.key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	surveys, err := decode(data)
	if err != nil {
		slog.Warn("malformed survey data, starting empty", "key", r.key, "error", err)
		return nil
	}
	slog.Info("surveys loaded", "key", r.key, "count", len(surveys))
	return surveys
}

func decode(data []byte) ([]models.Survey, error) {
	var surveys []models.Survey
	if err := json.Unmarshal(data, &surveys); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(surveys))
	out := make([]models.Survey, 0, len(surveys))
	for i, s := range surveys {
		if s.ID <= 0 {
			return nil, fmt.Errorf("record %d has no id", i)
		}
		if seen[s.ID] {
			slog.Warn("dropping survey with duplicate id", "id", s.ID, "name", s.Name)
			continue
		}
		seen[s.ID] = true
		if s.Responses == nil {
			s.Responses = models.Responses{}
		}
		out = append(out, s)
	}
	return out, nil
}

// IDs returns the generator shared with callers that build new records.
func (r *Repository) IDs() *ids.Generator {
	return r.ids
}

// Len returns the number of stored surveys.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.surveys)
}

// List returns copies of all surveys, most recently modified first.
// Ties keep insertion order.
func (r *Repository) List() []models.Survey {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Survey, len(r.surveys))
	for i, s := range r.surveys {
		out[i] = s.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateModified.After(out[j].DateModified)
	})
	return out
}

// Get returns a copy of the survey with the given id.
func (r *Repository) Get(id int64) (models.Survey, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.surveys[i].Clone(), true
	}
	return models.Survey{}, false
}

// FindByName returns the most recently modified survey with the given name.
func (r *Repository) FindByName(name string) (models.Survey, bool) {
	for _, s := range r.List() {
		if s.Name == name {
			return s, true
		}
	}
	return models.Survey{}, false
}

// Upsert stores the survey, replacing any record with the same id.
// Ids and timestamps are taken as given. The in-memory collection is
// updated even when the write to storage fails.
func (r *Repository) Upsert(s models.Survey) (models.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := s.Clone()
	if i := r.indexOf(s.ID); i >= 0 {
		r.surveys[i] = stored
	} else {
		r.surveys = append(r.surveys, stored)
		r.ids.Observe(s.ID)
	}
	return s, r.flush()
}

// Delete removes the survey with the given id. Absent ids are a no-op.
func (r *Repository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.surveys = append(r.surveys[:i], r.surveys[i+1:]...)
	return r.flush()
}

// Duplicate stores a copy of s under a fresh id with a "(Copy)" name and
// both timestamps set to now.
func (r *Repository) Duplicate(s models.Survey) (models.Survey, error) {
	now := r.clock()
	dup := models.Survey{
		ID:           r.ids.Next(),
		Name:         s.Name + CopySuffix,
		Responses:    s.Responses.Clone(),
		DateCreated:  now,
		DateModified: now,
	}
	return r.Upsert(dup)
}

// PutByName replaces the responses of the most recently modified survey
// called name, or creates one when none exists. created reports which.
func (r *Repository) PutByName(name string, responses models.Responses) (s models.Survey, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	i := -1
	for j, cur := range r.surveys {
		if cur.Name == name && (i < 0 || cur.DateModified.After(r.surveys[i].DateModified)) {
			i = j
		}
	}

	if i < 0 {
		s = models.Survey{
			ID:           r.ids.Next(),
			Name:         name,
			Responses:    responses.Clone(),
			DateCreated:  now,
			DateModified: now,
		}
		r.surveys = append(r.surveys, s.Clone())
		return s, true, r.flush()
	}

	if now.Before(r.surveys[i].DateCreated) {
		now = r.surveys[i].DateCreated
	}
	r.surveys[i].Responses = responses.Clone()
	r.surveys[i].DateModified = now
	return r.surveys[i].Clone(), false, r.flush()
}

// Flush writes the collection to storage again, e.g. after an earlier
// write failed.
func (r *Repository) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flush()
}

func (r *Repository) indexOf(id int64) int {
	for i, s := range r.surveys {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// flush must be called with mu held.
func (r *Repository) flush() error {
	r.observer.CollectionSize(len(r.surveys))

	var err error
	if len(r.surveys) == 0 {
		err = r.store.Delete(r.key)
	} else {
		var data []byte
		data, err = json.Marshal(r.surveys)
		if err == nil {
			err = r.store.Set(r.key, data)
		}
	}

	if err != nil {
		r.observer.FlushFailed()
		slog.Error("storage flush failed", "key", r.key, "count", len(r.surveys), "error", err)
		return fmt.Errorf("failed to persist surveys: %w", err)
	}
	return nil
}
