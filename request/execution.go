// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/gogama/servicex/transient"
	"github.com/google/uuid"
)

// An Execution represents the state of a single dispatch of a
// Descriptor.
//
// When a service dispatches a descriptor, it creates an Execution and
// updates it as the dispatch progresses: once the plan is materialized,
// once the transfer outcome arrives, and once the outcome has been
// classified. Event handlers receive the Execution at each step.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. They should treat
// the exported fields as read-only.
type Execution struct {
	// ID uniquely identifies the dispatch. It is assigned before the
	// first event fires.
	ID uuid.UUID

	// Descriptor is the descriptor being dispatched. It is never nil.
	Descriptor Descriptor

	// Plan is the materialized request. It is nil until the descriptor
	// has been materialized, and stays nil if materialization failed.
	Plan *Plan

	// Start is the time the dispatch started.
	Start time.Time

	// End is the time the dispatch result was classified. It contains
	// the zero value until then.
	End time.Time

	// StatusCode is the HTTP status code of the transfer outcome, or
	// zero if there was no status.
	StatusCode int

	// Body is the payload of the transfer outcome. It is nil when the
	// outcome carried no payload.
	Body []byte

	// TransportErr is the error reported by the transport session, if
	// any.
	TransportErr error

	// Err is the error the dispatch resolved to, or nil if it resolved
	// to a value. It is set when the dispatch ends, and also when
	// materialization fails.
	Err error

	data context.Context
}

// NewExecution returns an execution for d with a fresh random ID.
func NewExecution(d Descriptor) *Execution {
	return &Execution{
		ID:         uuid.New(),
		Descriptor: d,
	}
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Category returns the transience category of the transport error, or
// transient.Not if there is none.
func (e *Execution) Category() transient.Category {
	return transient.Categorize(e.TransportErr)
}

// SetValue allows event handlers to store arbitrary data in the
// execution. The key must follow the same rules as the key parameter
// in context.WithValue.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
