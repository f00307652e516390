// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an id (reused from an incoming X-Request-ID header or a
fresh UUID), echoed back in X-Request-ID. Start and completion are logged
with method, path, remote, status, and duration_ms.

# CORS Middleware

Enable cross-origin requests for the swctl client and browser tools:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadGateway, "message")

# Content Negotiation

WantsJSON reports whether the client asked for JSON rather than HTML:

	if middleware.WantsJSON(r) { ... }

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
