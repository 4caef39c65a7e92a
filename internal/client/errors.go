// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoServices       = errors.New("client services are not provided")
	ErrNoUI             = errors.New("ui is not provided")
	ErrReadImportFile   = errors.New("error reading import file")
	ErrDecodeImportFile = errors.New("import file is not a settings bundle")
)
