// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package wiki is a client for the paginated wiki list endpoint,
/api/v1/Wikis/List.

The Service interface fetches one batch of the list. Client is the
production implementation, built on servicex.Service; Mock answers
synchronously with canned data, for tests of code which depends on a
Service:

	var svc wiki.Service = &wiki.Client{Service: &servicex.Service{Session: &session.HTTPSession{}}}
	svc.Fetch(1, 25, func(r servicex.Result[wiki.ListResponse]) {
		list, err := r.Get()
		...
	})

TargetClient fetches the same data through a target.Provider, and
Observe through the channel-based stream package.
*/
package wiki
