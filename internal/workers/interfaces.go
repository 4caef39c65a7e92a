// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs fire-and-forget background tasks. A dispatched task
// runs on its own goroutine; its error or panic is logged and never reaches
// the code that dispatched it.
package workers

import "context"

// Task is a unit of background work.
type Task func(ctx context.Context) error

// Runner dispatches tasks without waiting for them.
type Runner interface {
	Go(name string, task Task)
}
