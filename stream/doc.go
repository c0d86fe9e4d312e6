// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package stream sends plain net/http requests and delivers the result on
a channel.

Every function in this package starts the exchange on a new goroutine
and returns a channel which receives exactly one servicex.Result, a
value or an error, and is then closed. The channel is buffered, so the
goroutine never blocks if the caller stops listening. Cancelling the
context passed in aborts the exchange, and the channel then receives
an error.

	req, _ := http.NewRequest("GET", "https://wikia.com/api/v1/Wikis/List?batch=1&expand=1&limit=1", nil)
	for r := range stream.Decode[wiki.ListResponse](ctx, http.DefaultClient, req, codec.Default) {
		list, err := r.Get()
		if err != nil {
			...
		}
		...
	}

Unlike servicex.Service, the functions here do not consult the status
code: any response whose body is read resolves to a value.
*/
package stream
