// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	urlpkg "net/url"

	"github.com/gogama/servicex/codec"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

// Materialize derives a transport-ready Plan from a descriptor, using
// c to serialize any JSON body. It wraps MaterializeWithContext using
// the background context.
func Materialize(d Descriptor, c codec.Codec) (*Plan, error) {
	return MaterializeWithContext(context.Background(), d, c)
}

// MaterializeWithContext derives a transport-ready Plan from a
// descriptor. The plan's context is set to ctx, which must be non-nil.
//
// The URL is assembled from the descriptor's scheme, host, path and
// query parameters. Query parameters are encoded in ascending key
// order, so the same parameter map always produces the same URL.
//
// The body is the JSON serialization of JSONBody if that is non-nil,
// otherwise the UTF-8 bytes of StringBody if present, otherwise
// empty. If JSONBody cannot be serialized, the error returned is a
// *SerializationError and no plan is produced.
//
// An error is also returned if the scheme or host is empty, if the
// method is not one of the nine known methods, or if any header name
// or value is not valid on the wire.
func MaterializeWithContext(ctx context.Context, d Descriptor, c codec.Codec) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if d == nil {
		return nil, errors.New("servicex/request: nil descriptor")
	}

	u, err := descriptorURL(d)
	if err != nil {
		return nil, err
	}

	method := d.HTTPMethod()
	if !method.Valid() {
		return nil, errors.Errorf("servicex/request: invalid method %q", method)
	}

	h, err := descriptorHeader(d)
	if err != nil {
		return nil, err
	}

	b, err := descriptorBody(d, c)
	if err != nil {
		return nil, err
	}

	return &Plan{
		ctx:                 ctx,
		Method:              method.String(),
		URL:                 u,
		Header:              h,
		Body:                b,
		CachePolicy:         d.CachePolicy(),
		Timeout:             d.TimeoutInterval(),
		AllowsMeteredAccess: d.AllowsMeteredAccess(),
	}, nil
}

// Curl materializes d and renders the result as an equivalent curl
// command line. See Plan.Curl.
func Curl(d Descriptor, c codec.Codec) (string, error) {
	p, err := Materialize(d, c)
	if err != nil {
		return "", err
	}
	return p.Curl(), nil
}

func descriptorURL(d Descriptor) (*urlpkg.URL, error) {
	scheme, host := d.URLScheme(), d.URLHost()
	if scheme == "" {
		return nil, errors.New("servicex/request: missing URL scheme")
	}
	if host == "" {
		return nil, errors.New("servicex/request: missing URL host")
	}
	u := &urlpkg.URL{
		Scheme: scheme,
		Host:   removeEmptyPort(host),
		Path:   d.URLPath(),
	}
	if params := d.URLParams(); len(params) > 0 {
		q := make(urlpkg.Values, len(params))
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

func descriptorHeader(d Descriptor) (http.Header, error) {
	fields := d.HTTPHeaders()
	h := make(http.Header, len(fields))
	for k, v := range fields {
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, errors.Errorf("servicex/request: invalid header name %q", k)
		}
		if !httpguts.ValidHeaderFieldValue(v) {
			return nil, errors.Errorf("servicex/request: invalid value for header %q", k)
		}
		h.Set(k, v)
	}
	return h, nil
}

func descriptorBody(d Descriptor, c codec.Codec) ([]byte, error) {
	if v := d.JSONBody(); v != nil {
		b, err := c.Encode(v)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return b, nil
	}
	if s, ok := d.StringBody(); ok {
		return []byte(s), nil
	}
	return nil, nil
}
