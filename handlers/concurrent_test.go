// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/testutil"
)

// TestConcurrentDuplicateVotes verifies that simultaneous votes from one user
// for one menu store a single vote and report conflicts for the rest
func TestConcurrentDuplicateVotes(t *testing.T) {
	env := newTestEnv(t)
	handler := env.authn.RequireUser(NewVoteHandler(env.svc, env.cfg).Create)

	r := testutil.CreateTestRestaurant(t, env.db, "Noodle Bar")
	menuID := testutil.CreateTestMenu(t, env.db, r.ID, "Lunch", testutil.Today())
	user := testutil.CreateTestUser(t, env.db, "hungry", models.RoleEmployee)
	headers := testutil.BearerHeader(t, user)

	numRequests := 10
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/v1/votes", models.CreateVoteRequest{Menu: menuID}, headers)
			w := httptest.NewRecorder()
			handler(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			default:
				t.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected 1 created vote, got %d", created.Load())
	}
	if int(conflicts.Load()) != numRequests-1 {
		t.Errorf("Expected %d conflicts, got %d", numRequests-1, conflicts.Load())
	}

	var count int
	env.db.QueryRow("SELECT COUNT(*) FROM vote WHERE menu_id = $1", menuID).Scan(&count)
	if count != 1 {
		t.Errorf("Expected 1 vote in database, got %d", count)
	}
}

// TestConcurrentVotersDifferentUsers verifies that simultaneous votes from
// distinct users are all stored
func TestConcurrentVotersDifferentUsers(t *testing.T) {
	env := newTestEnv(t)
	handler := env.authn.RequireUser(NewVoteHandler(env.svc, env.cfg).Create)

	r := testutil.CreateTestRestaurant(t, env.db, "Noodle Bar")
	menuID := testutil.CreateTestMenu(t, env.db, r.ID, "Lunch", testutil.Today())

	numVoters := 10
	headers := make([]map[string]string, numVoters)
	for i := 0; i < numVoters; i++ {
		user := testutil.CreateTestUser(t, env.db, "voter"+string(rune('A'+i)), models.RoleEmployee)
		headers[i] = testutil.BearerHeader(t, user)
	}

	var created atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/v1/votes", models.CreateVoteRequest{Menu: menuID}, headers[idx])
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(created.Load()) != numVoters {
		t.Errorf("Expected %d created votes, got %d", numVoters, created.Load())
	}

	results, err := env.svc.Results.CurrentDayResults(t.Context(), testutil.Today())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].TotalVotes != numVoters {
		t.Errorf("unexpected results %+v", results)
	}
}
