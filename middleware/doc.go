// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Access Boundary

An Authenticator turns request credentials into a models.Identity:

	authn := middleware.NewAuthenticator(svc.Users, cfg.JWTSecret, cfg.JWTIssuer)

	authn.WithIdentity(h)  // x-api-key and optional bearer token
	authn.RequireUser(h)   // 401 without a valid bearer token
	authn.RequireAdmin(h)  // 403 unless the user has the Admin role

Handlers read the result with IdentityFromContext and pass it to services.

WithAppVersion records the X-App-Version header (default "1.0"); read it
with AppVersion.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

DecodeAndValidate parses a request body and checks its validate struct tags
with go-playground/validator:

	var req models.CreateMenuRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Allows GET, POST and OPTIONS with the Content-Type, Authorization, x-api-key
and X-App-Version headers.
*/
package middleware
