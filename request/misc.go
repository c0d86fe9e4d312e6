// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A SerializationError is returned by Materialize when a descriptor's
// JSON body cannot be serialized.
type SerializationError struct {
	// Err is the error reported by the codec.
	Err error
}

func (err *SerializationError) Error() string {
	return "servicex/request: serialize JSON body: " + err.Err.Error()
}

// Unwrap returns the codec error.
func (err *SerializationError) Unwrap() error {
	return err.Err
}

// Cause returns the codec error. It lets errors.Cause from
// github.com/pkg/errors see through a SerializationError.
func (err *SerializationError) Cause() error {
	return err.Err
}
