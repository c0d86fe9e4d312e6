// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"github.com/gogama/servicex/request"
	"github.com/google/uuid"
)

// An Outcome is the result of one transfer, as reported by a Session.
//
// Each field may be absent independently: Body is nil when no payload
// was received, StatusCode is zero when no HTTP response was received,
// and Err is nil when the transfer did not fail. A transfer that
// received a response with an empty payload reports a non-nil, empty
// Body.
type Outcome struct {
	Body       []byte
	StatusCode int
	Err        error
}

// A Callback receives the outcome of a transfer. A Session calls it
// exactly once per transfer.
type Callback func(Outcome)

// A Session begins asynchronous transfers of materialized requests.
//
// BeginTransfer starts carrying out the plan before it returns, and
// returns a Task which can be used to cancel the transfer. When the
// transfer finishes, fails, or is cancelled, the session calls cb
// exactly once. The goroutine cb runs on is chosen by the session.
//
// Implementations of Session must be safe for concurrent use by
// multiple goroutines.
type Session interface {
	BeginTransfer(p *request.Plan, cb Callback) Task
}

// A Task is a handle on one transfer begun by a Session.
type Task interface {
	// ID uniquely identifies the transfer.
	ID() uuid.UUID
	// Plan returns the plan being carried out. It may be nil if the
	// task was never given a plan.
	Plan() *request.Plan
	// Cancel asks the session to abandon the transfer. Cancelling a
	// transfer whose callback has already run has no effect. Cancel
	// may be called more than once.
	Cancel()
	// Done returns a channel which is closed after the transfer's
	// callback has returned.
	Done() <-chan struct{}
}

// The SessionFunc type is an adapter to allow the use of ordinary
// functions as sessions.
type SessionFunc func(*request.Plan, Callback) Task

// BeginTransfer calls f(p, cb).
func (f SessionFunc) BeginTransfer(p *request.Plan, cb Callback) Task {
	return f(p, cb)
}
