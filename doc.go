// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package servicex dispatches declarative HTTP request descriptions and
delivers typed results to completion callbacks.

Describe each endpoint with a request.Descriptor, then dispatch it
through a Service:

	svc := &servicex.Service{
		Session: &session.HTTPSession{HTTPDoer: &http.Client{}},
	}
	task := servicex.Fetch(svc, ListRequest{Host: "wikia.com", Batch: 1, Limit: 1},
		func(r servicex.Result[ListResponse]) {
			resp, err := r.Get()
			...
		})
	...
	task.Cancel() // if the result is no longer wanted

To learn only whether a request succeeded, use FetchVoid:

	svc.FetchVoid(PingRequest{}, func(r servicex.Result[servicex.Unit]) {
		...
	})

Every dispatch calls its completion callback exactly once, with either a
value or an error. The error is one of *TransportError,
*NetworkError (matches ErrGenericNetwork), ErrMissingData, *DecodeError,
or a wrapped *request.SerializationError if the request body could not
be serialized.

To hook into the details of each dispatch, install a handler into the
appropriate handler chain. For example, to log every dispatch with
zerolog:

	handlers := &servicex.HandlerGroup{}
	servicex.InstallLogging(handlers, logger)
	svc := &servicex.Service{
		Session:  s,
		Handlers: handlers,
	}
*/
package servicex
