// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/storage"
	"github.com/danielhkuo/roi-survey/testutil"
)

// TestConcurrentPutByName verifies that simultaneous writes under different
// names all land in the collection with distinct ids.
func TestConcurrentPutByName(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := repository.New(store, repository.DefaultKey)
	app := testutil.NewTestApp(t, nil)
	h := NewSurveyHandler(repo, app.Session)

	numWriters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			name := "Survey " + strconv.Itoa(idx)
			body := map[string]interface{}{"company_name": name}
			w := httptest.NewRecorder()
			h.PutSurveyByName(w, testutil.MakeRequest("PUT", "/survey?surveyName="+strconv.Itoa(idx), body, nil))

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numWriters {
		t.Errorf("Expected %d successful writes, got %d", numWriters, successCount.Load())
	}

	seen := make(map[int64]bool)
	for _, s := range repo.List() {
		if seen[s.ID] {
			t.Errorf("Duplicate id %d", s.ID)
		}
		seen[s.ID] = true
	}
	if len(seen) != numWriters {
		t.Errorf("Expected %d surveys, got %d", numWriters, len(seen))
	}

	// Storage holds the complete collection
	reloaded := repository.New(store, repository.DefaultKey)
	if reloaded.Len() != numWriters {
		t.Errorf("Expected %d persisted surveys, got %d", numWriters, reloaded.Len())
	}
}

// TestConcurrentDuplicates verifies that concurrent duplicate requests each
// produce their own copy. The session serializes them, so the shared test
// clock is never called concurrently.
func TestConcurrentDuplicates(t *testing.T) {
	app := testutil.NewTestApp(t, nil)
	h := NewSurveyHandler(app.Repo, app.Session)
	saved := testutil.CreateTestSurvey(t, app.Repo, "Original", testutil.CompanyStep("Original"))
	id := formatID(saved.ID)

	numCopies := 5
	var wg sync.WaitGroup
	codes := make([]int, numCopies)
	for i := 0; i < numCopies; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := testutil.MakeRequest("POST", "/surveys/"+id+"/duplicate", nil, nil)
			req.SetPathValue("id", id)
			h.DuplicateSurvey(w, req)
			codes[idx] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Errorf("Copy %d: expected 201, got %d", i, code)
		}
	}
	if app.Repo.Len() != numCopies+1 {
		t.Errorf("Expected %d surveys, got %d", numCopies+1, app.Repo.Len())
	}
}
