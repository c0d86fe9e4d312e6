// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

import (
	"fmt"

	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/session"
)

// ClassifyStatus maps a transfer outcome to a Result which reports
// only success or failure.
//
// A transport error resolves to a *TransportError. Otherwise status
// 200 resolves to a value and any other status, including no status,
// resolves to a *NetworkError. The payload is ignored.
func ClassifyStatus(o session.Outcome) Result[Unit] {
	if o.Err != nil {
		return Error[Unit](&TransportError{Err: o.Err})
	}
	if o.StatusCode == 200 {
		return Value(Unit{})
	}
	return Error[Unit](&NetworkError{Code: GenericNetworkErrorCode, StatusCode: o.StatusCode})
}

// ClassifyDecode maps a transfer outcome to a Result holding the
// payload decoded as a T.
//
// A transport error resolves to a *TransportError, an absent payload
// to ErrMissingData, and a payload c cannot decode to a *DecodeError.
// The status code is not consulted.
func ClassifyDecode[T any](o session.Outcome, c codec.Codec) Result[T] {
	if o.Err != nil {
		return Error[T](&TransportError{Err: o.Err})
	}
	if o.Body == nil {
		return Error[T](ErrMissingData)
	}
	var v T
	if err := c.Decode(o.Body, &v); err != nil {
		return Error[T](&DecodeError{Type: fmt.Sprintf("%T", v), Err: err})
	}
	return Value(v)
}
