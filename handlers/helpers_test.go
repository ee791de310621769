// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/lunch-decider/cliparse"
	"github.com/danielhkuo/lunch-decider/middleware"
	"github.com/danielhkuo/lunch-decider/service"
	"github.com/danielhkuo/lunch-decider/store"
	"github.com/danielhkuo/lunch-decider/testutil"
)

// testEnv bundles a fresh database with services and the access boundary
type testEnv struct {
	db    *sql.DB
	cfg   cliparse.Config
	svc   *service.Services
	authn *middleware.Authenticator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := testutil.GetTestConfig()
	svc := service.New(store.New(db))
	return &testEnv{
		db:    db,
		cfg:   cfg,
		svc:   svc,
		authn: middleware.NewAuthenticator(svc.Users, cfg.JWTSecret, cfg.JWTIssuer),
	}
}

// serve runs req through handler and returns the recorded response
func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}
