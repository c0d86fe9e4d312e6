// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"context"

	"github.com/gogama/servicex/request"
	"github.com/google/uuid"
)

type task struct {
	id     uuid.UUID
	plan   *request.Plan
	cancel context.CancelFunc
	done   chan struct{}
}

func newTask(p *request.Plan, cancel context.CancelFunc) *task {
	return &task{
		id:     uuid.New(),
		plan:   p,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (t *task) ID() uuid.UUID         { return t.id }
func (t *task) Plan() *request.Plan   { return t.plan }
func (t *task) Done() <-chan struct{} { return t.done }

func (t *task) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Complete runs cb with o on the calling goroutine and returns a Task
// which is already done. Cancelling the returned Task has no effect.
//
// Complete is useful for sessions which answer without a network
// transfer, and for callers which must report an outcome without ever
// reaching a session.
func Complete(p *request.Plan, o Outcome, cb Callback) Task {
	t := newTask(p, nil)
	defer close(t.done)
	cb(o)
	return t
}
