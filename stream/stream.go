// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"io"
	"net/http"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/session"
	"github.com/pkg/errors"
)

// A Payload is a response as received.
type Payload struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Response sends req using doer, with ctx as the request context, and
// delivers the received response on the returned channel. If doer is
// nil, http.DefaultClient is used.
//
// A failure to send the request or read the body is delivered as a
// *servicex.TransportError.
func Response(ctx context.Context, doer session.HTTPDoer, req *http.Request) <-chan servicex.Result[Payload] {
	return start(ctx, doer, req, func(p Payload) servicex.Result[Payload] {
		return servicex.Value(p)
	})
}

// Decode is like Response, but delivers the body decoded as a T using
// c. A body c cannot decode is delivered as a *servicex.DecodeError.
func Decode[T any](ctx context.Context, doer session.HTTPDoer, req *http.Request, c codec.Codec) <-chan servicex.Result[T] {
	return start(ctx, doer, req, func(p Payload) servicex.Result[T] {
		return servicex.ClassifyDecode[T](session.Outcome{Body: p.Body, StatusCode: p.StatusCode}, c)
	})
}

// Void is like Response, but discards the response and delivers
// servicex.Unit once it has been received.
func Void(ctx context.Context, doer session.HTTPDoer, req *http.Request) <-chan servicex.Result[servicex.Unit] {
	return start(ctx, doer, req, func(Payload) servicex.Result[servicex.Unit] {
		return servicex.Value(servicex.Unit{})
	})
}

func start[T any](ctx context.Context, doer session.HTTPDoer, req *http.Request, mapFunc func(Payload) servicex.Result[T]) <-chan servicex.Result[T] {
	if ctx == nil {
		panic("servicex/stream: nil context")
	}
	if req == nil {
		panic("servicex/stream: nil request")
	}
	if doer == nil {
		doer = http.DefaultClient
	}

	ch := make(chan servicex.Result[T], 1)
	go func() {
		defer close(ch)
		p, err := exchange(doer, req.WithContext(ctx))
		if err != nil {
			ch <- servicex.Error[T](&servicex.TransportError{Err: err})
			return
		}
		ch <- mapFunc(p)
	}()
	return ch
}

func exchange(doer session.HTTPDoer, req *http.Request) (Payload, error) {
	resp, err := doer.Do(req)
	if err != nil {
		return Payload{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, errors.Wrap(err, "servicex/stream: read body")
	}
	if body == nil {
		body = []byte{}
	}
	return Payload{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
