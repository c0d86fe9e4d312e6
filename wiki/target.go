// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"net/url"
	"strconv"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/session"
	"github.com/gogama/servicex/target"
)

// A ListTarget is the list endpoint as a target.Target.
type ListTarget struct {
	// Base is the API base URL. If nil, https://wikia.com is used.
	Base  *url.URL
	Batch int
	Limit int
}

func (t ListTarget) BaseURL() *url.URL {
	if t.Base == nil {
		return &url.URL{Scheme: "https", Host: DefaultHost}
	}
	return t.Base
}

func (t ListTarget) Path() string               { return ListPath }
func (t ListTarget) Method() request.Method     { return request.Get }
func (t ListTarget) Headers() map[string]string { return nil }
func (t ListTarget) Validation() target.Validation {
	return target.SuccessCodes
}

func (t ListTarget) Parameters() url.Values {
	return url.Values{
		"batch": {strconv.Itoa(t.Batch)},
		"limit": {strconv.Itoa(t.Limit)},
	}
}

// SampleData is MockListResponse as JSON.
func (t ListTarget) SampleData() []byte {
	b, err := codec.Default.Encode(MockListResponse())
	if err != nil {
		panic(err)
	}
	return b
}

// A TargetClient is a Service which requests ListTarget through a
// target.Provider. Status codes other than 2XX resolve to a
// *target.StatusCodeError.
type TargetClient struct {
	// Provider requests targets. It must not be nil.
	Provider *target.Provider
	// Base is the API base URL. If nil, https://wikia.com is used.
	Base *url.URL
	// Codec decodes payloads. The zero value uses codec.Default.
	Codec codec.Codec
}

// Fetch requests a ListTarget and maps the response to a ListResponse.
func (c *TargetClient) Fetch(batch, size int, onComplete func(servicex.Result[ListResponse])) session.Task {
	t := ListTarget{Base: c.Base, Batch: batch, Limit: size}
	return c.Provider.Request(t, func(resp *target.Response, err error) {
		if err != nil {
			onComplete(servicex.Error[ListResponse](err))
			return
		}
		list, err := target.Map[ListResponse](resp, c.Codec)
		if err != nil {
			onComplete(servicex.Error[ListResponse](err))
			return
		}
		onComplete(servicex.Value(list))
	})
}
