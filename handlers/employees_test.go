// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/testutil"
)

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv(t)
	handler := NewEmployeeHandler(env.svc, env.cfg)
	admin := testutil.CreateTestUser(t, env.db, "admin", models.RoleAdmin)
	employee := testutil.CreateTestUser(t, env.db, "employee", models.RoleEmployee)

	tests := []struct {
		name           string
		body           models.CreateUserRequest
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "admin creates employee",
			body:           models.CreateUserRequest{Username: "testemployee", Password: "password123", Role: models.RoleEmployee},
			headers:        testutil.BearerHeader(t, admin),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate username",
			body:           models.CreateUserRequest{Username: "testemployee", Password: "password123", Role: models.RoleEmployee},
			headers:        testutil.BearerHeader(t, admin),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "short password",
			body:           models.CreateUserRequest{Username: "shorty", Password: "pw", Role: models.RoleEmployee},
			headers:        testutil.BearerHeader(t, admin),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown role",
			body:           models.CreateUserRequest{Username: "boss", Password: "password123", Role: "Manager"},
			headers:        testutil.BearerHeader(t, admin),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "employee forbidden",
			body:           models.CreateUserRequest{Username: "sneaky", Password: "password123", Role: models.RoleAdmin},
			headers:        testutil.BearerHeader(t, employee),
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/v1/employees", tt.body, tt.headers)
			w := serve(env.authn.RequireAdmin(handler.Create), req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.UserResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Username != tt.body.Username {
					t.Errorf("username = %q, want %q", resp.Username, tt.body.Username)
				}
				if len(resp.Groups) != 1 || resp.Groups[0] != models.RoleEmployee {
					t.Errorf("groups = %v, want [Employee]", resp.Groups)
				}
			}
		})
	}
}
