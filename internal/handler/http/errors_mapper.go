// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/store"
)

type errorStatus struct {
	err     error
	status  int
	message string
	code    string
}

// errorStatusTable is checked in order. Storage errors are wrapped together
// with ErrStorageUnavailable when they are retryable, so that entry comes
// before the low-level sentinels.
var errorStatusTable = []errorStatus{
	{err: service.ErrInvalidUserID, status: http.StatusBadRequest, message: app.MsgInvalidUserID},
	{err: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},
	{err: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},

	{err: store.ErrSettingsNotFound, status: http.StatusNotFound, message: app.MsgSettingsNotFound, code: app.CodeSettingsNotFound},
	{err: store.ErrStorageUnavailable, status: http.StatusServiceUnavailable, message: app.MsgStorageUnavailable},

	{err: store.ErrBuildingSQLQuery, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrExecutingQuery, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrBeginningTransaction, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrCommitingTransaction, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrExecutingStatement, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrScanningRow, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	{err: store.ErrEncodingRecords, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
}

var internalErrorStatus = errorStatus{status: http.StatusInternalServerError, message: app.MsgInternalServerError}

// statusFromError returns the table entry matching err. Unknown errors map
// to 500 without a code.
func statusFromError(err error) errorStatus {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.err) {
			return entry
		}
	}
	return internalErrorStatus
}
