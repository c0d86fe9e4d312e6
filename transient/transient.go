// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the category of a transport error, as reported by
// function Categorize().
//
// The category Not means the error is none of the kinds below. All
// other categories identify a specific, recognizable failure which a
// caller may want to report or handle differently.
type Category int

const (
	// Not indicates a nil error or any error not covered by another
	// category.
	Not Category = iota
	// Timeout indicates a client-side timeout, for example because the
	// plan's timeout elapsed before the transfer completed.
	//
	// Function Categorize() will return Timeout if the error or any of
	// its wrapped causes has a Timeout() function that reports true, or
	// is context.DeadlineExceeded.
	Timeout
	// Cancelled indicates the transfer was cancelled by the caller
	// before it completed.
	//
	// Function Categorize() will return Cancelled if the error is not a
	// Timeout and the error or any of its wrapped causes is
	// context.Canceled.
	Cancelled
	// ConnRefused indicates the remote host refused the connection, and
	// corresponds to the POSIX error code ECONNREFUSED.
	ConnRefused
	// ConnReset indicates the remote host returned an RST packet on a
	// previously active TCP connection, and corresponds to the POSIX
	// error code ECONNRESET.
	ConnReset
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"Cancelled",
	"ConnRefused",
	"ConnReset",
}

// String returns the name of the category.
func (cat Category) String() string {
	if cat < 0 || int(cat) >= len(categoryNames) {
		return "Category(invalid)"
	}
	return categoryNames[cat]
}

// Categorize returns the category of the given error. A nil error, and
// any error not recognized, both produce the return value Not.
//
// Categorize looks at wrapped cause errors contained within err, not
// just err itself.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	if errors.Is(err, context.Canceled) {
		return Cancelled
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
