// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

import (
	"context"
	"time"

	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/session"
	"github.com/pkg/errors"
)

var emptyHandlers = HandlerGroup{}

// A Service dispatches request descriptors through a transport session
// and delivers typed results to completion callbacks.
//
// Every dispatch materializes the descriptor, begins the transfer
// before returning, classifies the outcome, and calls the completion
// callback exactly once with either a value or an error. The returned
// Task can be used to cancel the transfer. Nothing is retried.
//
// A Service never cancels transfers on its own. In particular, a
// transfer keeps running after the last reference to its Service is
// dropped; cancel it through its Task if the result is no longer
// wanted.
//
// Completion callbacks run on the goroutine the session delivers the
// outcome on (for HTTPSession, the transfer goroutine) unless Deliver
// is set. If materialization fails, the callback runs before the
// dispatch method returns, again through Deliver if set.
//
// A Service is safe for concurrent use by multiple goroutines once
// configured. The session is shared by every dispatch and is never
// modified by the Service.
type Service struct {
	// Session carries out transfers. It must not be nil.
	Session session.Session
	// Codec serializes JSON request bodies and decodes payloads. The
	// zero value uses codec.Default.
	Codec codec.Codec
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a dispatch.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Deliver, if set, is used to run every completion callback, for
	// example to move it onto a particular goroutine. It must run the
	// function it is given exactly once. The returned Task's Done
	// channel does not wait for a callback handed to Deliver, and may
	// close before that callback runs.
	Deliver func(func())
}

// FetchVoid dispatches d and reports only whether the transfer
// succeeded with status 200, following ClassifyStatus. It wraps
// FetchVoidContext using the background context.
func (s *Service) FetchVoid(d request.Descriptor, onComplete func(Result[Unit])) session.Task {
	return s.FetchVoidContext(context.Background(), d, onComplete)
}

// FetchVoidContext is like FetchVoid, and uses ctx as the plan context.
// Cancelling ctx cancels the transfer.
func (s *Service) FetchVoidContext(ctx context.Context, d request.Descriptor, onComplete func(Result[Unit])) session.Task {
	return dispatch(ctx, s, d, ClassifyStatus, onComplete)
}

// Fetch dispatches d through s and decodes the payload as a T,
// following ClassifyDecode. It wraps FetchContext using the background
// context.
//
// Fetch is a function rather than a method of Service because Go
// methods cannot have type parameters.
func Fetch[T any](s *Service, d request.Descriptor, onComplete func(Result[T])) session.Task {
	return FetchContext(context.Background(), s, d, onComplete)
}

// FetchContext is like Fetch, and uses ctx as the plan context.
// Cancelling ctx cancels the transfer.
func FetchContext[T any](ctx context.Context, s *Service, d request.Descriptor, onComplete func(Result[T])) session.Task {
	c := s.Codec
	return dispatch(ctx, s, d, func(o session.Outcome) Result[T] {
		return ClassifyDecode[T](o, c)
	}, onComplete)
}

func dispatch[T any](ctx context.Context, s *Service, d request.Descriptor, classify func(session.Outcome) Result[T], onComplete func(Result[T])) session.Task {
	if s.Session == nil {
		panic("servicex: nil session")
	}
	if onComplete == nil {
		panic("servicex: nil completion callback")
	}

	handlers := s.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	e := request.NewExecution(d)
	handlers.run(BeforeDispatch, e)
	e.Start = time.Now()

	p, err := request.MaterializeWithContext(ctx, d, s.Codec)
	if err != nil {
		err = errors.Wrap(err, "servicex: materialize request")
		return session.Complete(nil, session.Outcome{Err: err}, func(session.Outcome) {
			e.Err = err
			e.End = time.Now()
			handlers.run(AfterDispatch, e)
			s.deliver(func() { onComplete(Error[T](err)) })
		})
	}

	e.Plan = p
	handlers.run(AfterMaterialize, e)

	return s.Session.BeginTransfer(p, func(o session.Outcome) {
		e.StatusCode = o.StatusCode
		e.Body = o.Body
		e.TransportErr = o.Err
		handlers.run(AfterTransfer, e)
		r := classify(o)
		e.Err = r.Err()
		e.End = time.Now()
		handlers.run(AfterDispatch, e)
		s.deliver(func() { onComplete(r) })
	})
}

func (s *Service) deliver(f func()) {
	if s.Deliver != nil {
		s.Deliver(f)
		return
	}
	f()
}
