// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidUserID       = errors.New("invalid user id")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// client side
var (
	ErrNotSignedIn = errors.New("not signed in")

	ErrEmptyToken   = errors.New("token is empty")
	ErrInvalidToken = errors.New("token is invalid")

	ErrFetchingSettings = errors.New("error fetching remote settings")
	ErrSavingSettings   = errors.New("error saving remote settings")
	ErrApplyingSettings = errors.New("error applying remote settings locally")
	ErrImportingBundle  = errors.New("error importing settings bundle")

	ErrSavingSession   = errors.New("error saving session")
	ErrClearingSession = errors.New("error clearing session")
	ErrLoadingSession  = errors.New("error loading session")
)
