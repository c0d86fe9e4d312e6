// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"time"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/session"
)

// A Service fetches batches of the wiki list.
type Service interface {
	// Fetch requests batch number batch, holding up to size items, and
	// calls onComplete exactly once with the result. The returned Task
	// may be used to cancel the request.
	Fetch(batch, size int, onComplete func(servicex.Result[ListResponse])) session.Task
}

// A Client fetches the wiki list over the network.
type Client struct {
	// Service dispatches requests. It must not be nil.
	Service *servicex.Service
	// Scheme is the URL scheme. The zero value means "https".
	Scheme string
	// Host is the API host. The zero value means DefaultHost.
	Host string
	// Timeout overrides the request timeout if positive.
	Timeout time.Duration
	// CachePolicy overrides the request cache policy if non-nil.
	CachePolicy *request.CachePolicy
}

// Fetch dispatches a ListRequest through c.Service and decodes the
// payload.
func (c *Client) Fetch(batch, size int, onComplete func(servicex.Result[ListResponse])) session.Task {
	return servicex.Fetch(c.Service, c.ListRequest(batch, size), onComplete)
}

// ListRequest returns the descriptor Fetch dispatches.
func (c *Client) ListRequest(batch, size int) request.Descriptor {
	r := ListRequest{Host: c.Host, Batch: batch, Limit: size}
	if r.Host == "" {
		r.Host = DefaultHost
	}
	if c.Scheme == "" && c.Timeout <= 0 && c.CachePolicy == nil {
		return r
	}
	return configured{ListRequest: r, scheme: c.Scheme, timeout: c.Timeout, cachePolicy: c.CachePolicy}
}

type configured struct {
	ListRequest
	scheme      string
	timeout     time.Duration
	cachePolicy *request.CachePolicy
}

func (r configured) URLScheme() string {
	if r.scheme == "" {
		return r.ListRequest.URLScheme()
	}
	return r.scheme
}

func (r configured) TimeoutInterval() time.Duration {
	if r.timeout <= 0 {
		return r.ListRequest.TimeoutInterval()
	}
	return r.timeout
}

func (r configured) CachePolicy() request.CachePolicy {
	if r.cachePolicy == nil {
		return r.ListRequest.CachePolicy()
	}
	return *r.cachePolicy
}

// Mock is a Service which answers every fetch with MockListResponse,
// synchronously and without any network access.
type Mock struct{}

// Fetch calls onComplete with MockListResponse before returning. The
// returned Task is already done and has no plan.
func (Mock) Fetch(_, _ int, onComplete func(servicex.Result[ListResponse])) session.Task {
	return session.Complete(nil, session.Outcome{}, func(session.Outcome) {
		onComplete(servicex.Value(MockListResponse()))
	})
}
