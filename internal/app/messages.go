// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// settings server handlers and the client notification layer.
//
// Msg* constants are human-readable strings written into HTTP response
// bodies. Notify* constants are the texts of user-facing notifications; the
// ones ending in "%s" are format strings that receive the underlying error
// message.
package app

// HTTP response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a slot is not a JSON array.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgSettingsNotFound is returned when the user has no settings record
	// yet.
	MsgSettingsNotFound = "settings not found"

	// MsgAccessDenied is returned when the path user id differs from the
	// subject of the bearer token.
	MsgAccessDenied = "access denied"

	// MsgInvalidUserID is returned when the path user id is not a UUID.
	MsgInvalidUserID = "invalid user id"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgStorageUnavailable is returned when the database is temporarily
	// unreachable.
	MsgStorageUnavailable = "storage unavailable"

	// MsgInternalServerError is returned for every other failure.
	MsgInternalServerError = "internal server error"
)

// Machine-readable error codes. The server sets HeaderErrorCode on error
// responses that clients must tell apart from a plain status code.
const (
	HeaderErrorCode = "X-Error-Code"

	// CodeSettingsNotFound marks the 404 sent when the user has no settings
	// record yet. Clients treat only this 404 as "upload the local bundle".
	CodeSettingsNotFound = "settings_not_found"
)

// User-facing notifications.
const (
	NotifyNotSignedIn     = "not signed in, cannot save settings to the cloud"
	NotifySettingsSynced  = "settings synced from the cloud, the app will reload"
	NotifySaveFailed      = "error saving settings: %s"
	NotifyLoadFailed      = "error loading settings: %s"
	NotifyUploadedInitial = "local settings saved to the cloud for the first time"
	NotifySettingsSaved   = "settings saved to the cloud"
	NotifySignedIn        = "signed in as %s"
	NotifySignedOut       = "signed out"
	NotifyUserIDCopied    = "user id copied to clipboard"
	NotifyClipboardFailed = "could not copy to clipboard: %s"
	NotifySignInFailed    = "sign in failed: %s"
	NotifySignOutFailed   = "sign out failed: %s"
)
