// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gogama/servicex/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// An HTTPSession is a Session which carries out each transfer with an
// HTTPDoer on its own goroutine. Its zero value is a valid
// configuration which uses http.DefaultClient.
//
// Each transfer's context is derived from the plan's context, with the
// plan's timeout applied as a deadline. Cancelling the returned Task
// cancels that context; the callback then receives an error wrapping
// context.Canceled, unless the transfer already completed.
//
// The callback runs on the transfer goroutine. HTTPSession does not
// retry, and does not cache responses: the plan's cache policy is only
// forwarded as request directives (see request.Plan.ToRequest), and
// its metered-access flag is ignored.
//
// An HTTPSession is safe for concurrent use by multiple goroutines.
type HTTPSession struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
}

// BeginTransfer starts a goroutine which sends the plan's request,
// reads the whole response body, and passes the outcome to cb.
//
// The outcome has a non-nil Body and the response status code whenever
// a response is received and its body read. If the request fails, or
// reading the body fails, the outcome's Err is a *url.Error.
func (s *HTTPSession) BeginTransfer(p *request.Plan, cb Callback) Task {
	if p == nil {
		panic("servicex/session: nil plan")
	}
	if cb == nil {
		panic("servicex/session: nil callback")
	}

	ctx, cancel := transferContext(p)
	t := newTask(p, cancel)
	doer := s.doer()

	go func() {
		defer close(t.done)
		defer cancel()
		cb(sendAndReceive(ctx, p, doer))
	}()

	return t
}

// CloseIdleConnections invokes the same method on the session's
// underlying HTTPDoer. If the HTTPDoer has no CloseIdleConnections
// method, this method does nothing.
func (s *HTTPSession) CloseIdleConnections() {
	type idleCloser interface {
		CloseIdleConnections()
	}
	if ic, ok := s.doer().(idleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (s *HTTPSession) doer() HTTPDoer {
	if s.HTTPDoer == nil {
		return http.DefaultClient
	}

	return s.HTTPDoer
}

func transferContext(p *request.Plan) (context.Context, context.CancelFunc) {
	if p.Timeout > 0 {
		return context.WithTimeout(p.Context(), p.Timeout)
	}
	return context.WithCancel(p.Context())
}

func sendAndReceive(ctx context.Context, p *request.Plan, doer HTTPDoer) Outcome {
	resp, err := doer.Do(p.ToRequest(ctx))
	if err != nil {
		return Outcome{Err: urlErrorWrap(p, err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{StatusCode: resp.StatusCode, Err: urlErrorWrap(p, err)}
	}
	if body == nil {
		body = []byte{}
	}
	return Outcome{Body: body, StatusCode: resp.StatusCode}
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
