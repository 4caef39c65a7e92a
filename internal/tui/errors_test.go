// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "refused", err: errors.New("Put \"http://x\": dial tcp 127.0.0.1:8080: connect: connection refused"), want: "no network or the settings server is unavailable"},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: "no network or the settings server is unavailable"},
		{name: "other", err: errors.New("storage unavailable"), want: "storage unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abcdef", fitText("abcdef", 0))
}
