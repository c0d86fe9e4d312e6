// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/session"
	"github.com/gogama/servicex/stream"
	"github.com/pkg/errors"
)

// A StreamClient fetches the wiki list with plain net/http requests,
// delivering each result on a channel.
type StreamClient struct {
	// Doer sends requests. If nil, http.DefaultClient is used.
	Doer session.HTTPDoer
	// Scheme is the URL scheme. The zero value means "https".
	Scheme string
	// Host is the API host. The zero value means DefaultHost.
	Host string
	// Codec decodes payloads. The zero value uses codec.Default.
	Codec codec.Codec
}

// Observe requests batch number batch, holding up to size items. The
// returned channel receives exactly one result and is then closed.
// The status code is not consulted.
func (c *StreamClient) Observe(ctx context.Context, batch, size int) <-chan servicex.Result[ListResponse] {
	req, err := http.NewRequest(http.MethodGet, c.listURL(batch, size), nil)
	if err != nil {
		ch := make(chan servicex.Result[ListResponse], 1)
		ch <- servicex.Error[ListResponse](errors.Wrap(err, "servicex/wiki: build request"))
		close(ch)
		return ch
	}
	return stream.Decode[ListResponse](ctx, c.Doer, req, c.Codec)
}

func (c *StreamClient) listURL(batch, size int) string {
	u := url.URL{
		Scheme: c.Scheme,
		Host:   c.Host,
		Path:   ListPath,
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if u.Host == "" {
		u.Host = DefaultHost
	}
	q := url.Values{}
	q.Set("expand", "1")
	q.Set("batch", strconv.Itoa(batch))
	q.Set("limit", strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return u.String()
}
