// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"testing"
	"time"

	"github.com/gogama/servicex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamClient_listURL(t *testing.T) {
	c := &StreamClient{}
	assert.Equal(t, "https://wikia.com/api/v1/Wikis/List?batch=1&expand=1&limit=1", c.listURL(1, 1))
}

func TestStreamClient_Observe(t *testing.T) {
	server := newServer(t)
	defer server.Close()

	u := serverURL(t, server)
	c := &StreamClient{Doer: server.Client(), Scheme: u.Scheme, Host: u.Host}

	var results []servicex.Result[ListResponse]
	ch := c.Observe(context.Background(), 1, 25)
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case r, ok := <-ch:
			if !ok {
				done = true
				break
			}
			results = append(results, r)
		case <-timeout:
			t.Fatal("stream did not close")
		}
	}
	require.Len(t, results, 1)
	list, err := results[0].Get()
	require.NoError(t, err)
	assert.Equal(t, MockListResponse(), list)
}
