// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

// Unit is the value type of a dispatch which reports only success.
type Unit struct{}

// A Result is the outcome of one dispatch: either a value of type T,
// or an error. There is no third state.
//
// The zero Result holds the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Value returns a Result holding v.
func Value[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Error returns a Result holding err, which must be non-nil.
func Error[T any](err error) Result[T] {
	if err == nil {
		panic("servicex: nil error result")
	}
	return Result[T]{err: err}
}

// IsValue reports whether r holds a value rather than an error.
func (r Result[T]) IsValue() bool {
	return r.err == nil
}

// Get returns the value and error held by r. Exactly one of them is
// meaningful: when the error is non-nil, the value is the zero value
// of T.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Err returns the error held by r, or nil if r holds a value.
func (r Result[T]) Err() error {
	return r.err
}
