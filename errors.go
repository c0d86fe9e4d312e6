// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

import (
	"fmt"

	"github.com/gogama/servicex/transient"
	"github.com/pkg/errors"
)

// GenericNetworkErrorCode is the code every NetworkError reports,
// whatever the actual HTTP status was. Callers which need the real
// status should read NetworkError.StatusCode.
const GenericNetworkErrorCode = 400

// A NetworkError reports that a transfer completed without a transport
// error but with a status other than 200.
type NetworkError struct {
	// Code is always GenericNetworkErrorCode.
	Code int
	// StatusCode is the HTTP status actually received, or zero if the
	// outcome carried no status.
	StatusCode int
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("servicex: network error %d (HTTP status %d)", err.Code, err.StatusCode)
}

// Is reports whether target is also a *NetworkError, so that
// errors.Is(err, ErrGenericNetwork) holds for every NetworkError.
func (err *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

var (
	// ErrGenericNetwork matches any *NetworkError under errors.Is.
	ErrGenericNetwork error = &NetworkError{Code: GenericNetworkErrorCode}

	// ErrMissingData is the error a decoding dispatch resolves to when
	// the transfer succeeded but delivered no payload.
	ErrMissingData = errors.New("servicex: data was not retrieved from request")
)

// A TransportError wraps an error reported by the transport session.
type TransportError struct {
	Err error
}

func (err *TransportError) Error() string {
	return "servicex: transport: " + err.Err.Error()
}

// Unwrap returns the session error.
func (err *TransportError) Unwrap() error {
	return err.Err
}

// Cause returns the session error, for errors.Cause from
// github.com/pkg/errors.
func (err *TransportError) Cause() error {
	return err.Err
}

// Category returns the transience category of the session error.
func (err *TransportError) Category() transient.Category {
	return transient.Categorize(err.Err)
}

// A DecodeError reports that a payload was present but could not be
// decoded into the requested type.
type DecodeError struct {
	// Type names the requested Go type.
	Type string
	// Err is the error reported by the codec.
	Err error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("servicex: decode %s: %v", err.Type, err.Err)
}

// Unwrap returns the codec error.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

// Cause returns the codec error, for errors.Cause from
// github.com/pkg/errors.
func (err *DecodeError) Cause() error {
	return err.Err
}
