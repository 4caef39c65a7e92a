// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes of the settings server.
var (
	// ErrSettingsNotFound is the "no record yet" signal: a 404 carrying the
	// settings_not_found error code. It is the only error the sync engine
	// treats as a normal outcome.
	ErrSettingsNotFound = errors.New("settings were not found")

	// ErrNotFound is any other 404, e.g. a wrong base URL or a proxy route.
	ErrNotFound = errors.New("resource not found")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrInvalidUserID is returned before any request is sent when the user id
	// is empty.
	ErrInvalidUserID = errors.New("invalid user id")
)
