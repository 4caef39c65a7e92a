// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"slices"
	"sync"
)

// observers is a set of callbacks that all receive every emitted value.
// Callbacks run on the emitting goroutine, outside the lock, so a callback
// may subscribe or unsubscribe.
type observers[T any] struct {
	mu     sync.RWMutex
	nextID int
	fns    map[int]func(T)
}

func (o *observers[T]) subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fns == nil {
		o.fns = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.fns, id)
			o.mu.Unlock()
		})
	}
}

func (o *observers[T]) emit(value T) {
	o.mu.RLock()
	fns := make([]func(T), 0, len(o.fns))
	for _, id := range slices.Sorted(maps.Keys(o.fns)) {
		fns = append(fns, o.fns[id])
	}
	o.mu.RUnlock()

	for _, fn := range fns {
		fn(value)
	}
}

func (o *observers[T]) count() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.fns)
}
