// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package codec provides the JSON codec used to serialize request bodies
and decode response payloads.

The zero value of Codec behaves like Default. To use a different
jsoniter configuration, build a codec with New.

	var resp wiki.ListResponse
	err := codec.Default.Decode(body, &resp)

Time values are written and read as RFC 3339 (ISO-8601) strings, which
is the encoding/json convention for time.Time.
*/
package codec
