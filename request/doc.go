// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the declarative request type Descriptor, the
transport-ready request type Plan derived from it, and Execution, which
describes one dispatch of a Descriptor.

A Descriptor describes one request against an endpoint. Every aspect of
the request except host and path has a default, supplied by embedding
Defaults, so an endpoint declares only what varies:

	type ListRequest struct {
		request.Defaults
		Host         string
		Batch, Limit int
	}

	func (r ListRequest) URLHost() string { return r.Host }
	func (r ListRequest) URLPath() string { return "/api/v1/Wikis/List" }
	func (r ListRequest) URLParams() map[string]string {
		return map[string]string{
			"expand": "1",
			"batch":  strconv.Itoa(r.Batch),
			"limit":  strconv.Itoa(r.Limit),
		}
	}

Materialize turns a Descriptor into a Plan, and Curl renders the same
request as a curl command line for debugging:

	p, err := request.Materialize(ListRequest{Host: "wikia.com", Batch: 1, Limit: 1}, codec.Default)
	...
	fmt.Println(p.Curl())

Materialize is a pure function of the descriptor. Unlike some request
builders, it reports a JSON body that cannot be serialized as a
*SerializationError rather than silently sending an empty body.
*/
package request
