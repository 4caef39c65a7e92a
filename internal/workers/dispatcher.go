// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

// Dispatcher is the [Runner] used by the client. Tasks receive a context
// that is detached from the caller, so finishing the dispatching call (or
// cancelling its context) never cancels an in-flight task.
type Dispatcher struct {
	wg     sync.WaitGroup
	ctx    context.Context
	logger *logger.Logger
}

// NewDispatcher returns a Dispatcher whose tasks log through log. The base
// context carries the logger so tasks can use [logger.FromContext].
func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		ctx:    log.WithContext(context.Background()),
		logger: log,
	}
}

// Go starts task on a new goroutine and returns immediately.
func (d *Dispatcher) Go(name string, task Task) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error().
					Str("task", name).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Msg("background task panicked")
			}
		}()

		if err := task(d.ctx); err != nil {
			d.logger.Err(err).Str("task", name).Msg("background task failed")
			return
		}
		d.logger.Debug().Str("task", name).Msg("background task finished")
	}()
}

// Wait blocks until every dispatched task has returned or ctx is done. It is
// meant for application shutdown only.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
