// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transient categorizes the errors a transport session reports,
so dispatch results and log lines can tell a timeout from a
cancellation from a refused connection.
*/
package transient
