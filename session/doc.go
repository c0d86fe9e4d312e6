// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package session defines the transport capability a service dispatches
through, and provides HTTPSession, an implementation over any HTTPDoer
such as the GoLang standard http.Client.

A Session begins a transfer and returns at once with a Task; the
outcome arrives later on a callback:

	s := &session.HTTPSession{HTTPDoer: &http.Client{}}
	t := s.BeginTransfer(plan, func(o session.Outcome) {
		...
	})
	...
	t.Cancel()

Tests which must not touch the network can implement Session with a
SessionFunc, answering through Complete.
*/
package session
