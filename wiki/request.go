// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"strconv"

	"github.com/gogama/servicex/request"
)

// DefaultHost is the host of the production wiki API.
const DefaultHost = "wikia.com"

// ListPath is the path of the list endpoint.
const ListPath = "/api/v1/Wikis/List"

// A ListRequest describes a request for one batch of the wiki list,
// with expanded items.
type ListRequest struct {
	request.Defaults
	Host  string
	Batch int
	Limit int
}

func (r ListRequest) URLHost() string { return r.Host }
func (r ListRequest) URLPath() string { return ListPath }

func (r ListRequest) URLParams() map[string]string {
	return map[string]string{
		"expand": "1",
		"batch":  strconv.Itoa(r.Batch),
		"limit":  strconv.Itoa(r.Limit),
	}
}
