// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	body, err := codec.Default.Encode(MockListResponse())
	require.NoError(t, err)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ListPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("batch") == "9" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`boom`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
}

func serverURL(t *testing.T, server *httptest.Server) *url.URL {
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return u
}

func fetch(t *testing.T, svc Service, batch, size int) servicex.Result[ListResponse] {
	results := make(chan servicex.Result[ListResponse], 2)
	task := svc.Fetch(batch, size, func(r servicex.Result[ListResponse]) {
		results <- r
	})
	require.NotNil(t, task)
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not complete")
	}
	require.Len(t, results, 1)
	return <-results
}

func TestListRequest(t *testing.T) {
	p, err := request.Materialize(ListRequest{Host: "wikia.com", Batch: 1, Limit: 1}, codec.Default)
	require.NoError(t, err)
	assert.Equal(t, "https://wikia.com/api/v1/Wikis/List?batch=1&expand=1&limit=1", p.URL.String())
	assert.Equal(t, "GET", p.Method)
	assert.Empty(t, p.Body)
	assert.Equal(t, request.ReturnCacheDataElseLoad, p.CachePolicy)
	assert.Equal(t, 10*time.Second, p.Timeout)
	assert.True(t, p.AllowsMeteredAccess)

	curl, err := request.Curl(ListRequest{Host: "wikia.com", Batch: 2, Limit: 3}, codec.Default)
	require.NoError(t, err)
	assert.Equal(t, "curl 'https://wikia.com/api/v1/Wikis/List?batch=2&expand=1&limit=3' \n\t -H 'Cache-Control: max-stale'", curl)
}

func TestClient_ListRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := &Client{}
		assert.Equal(t, ListRequest{Host: DefaultHost, Batch: 1, Limit: 2}, c.ListRequest(1, 2))
	})
	t.Run("overrides", func(t *testing.T) {
		policy := request.ReloadIgnoringLocalCacheData
		c := &Client{Scheme: "http", Host: "localhost:8080", Timeout: time.Second, CachePolicy: &policy}
		p, err := request.Materialize(c.ListRequest(1, 2), codec.Default)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api/v1/Wikis/List?batch=1&expand=1&limit=2", p.URL.String())
		assert.Equal(t, time.Second, p.Timeout)
		assert.Equal(t, request.ReloadIgnoringLocalCacheData, p.CachePolicy)
	})
}

func TestClient_Fetch(t *testing.T) {
	server := newServer(t)
	defer server.Close()

	u := serverURL(t, server)
	c := &Client{
		Service: &servicex.Service{Session: &session.HTTPSession{HTTPDoer: server.Client()}},
		Scheme:  u.Scheme,
		Host:    u.Host,
	}

	t.Run("value", func(t *testing.T) {
		list, err := fetch(t, c, 1, 25).Get()
		require.NoError(t, err)
		assert.Equal(t, MockListResponse(), list)
	})
	t.Run("decode error", func(t *testing.T) {
		var decodeErr *servicex.DecodeError
		assert.True(t, errors.As(fetch(t, c, 9, 25).Err(), &decodeErr))
	})
}

func TestMock_Fetch(t *testing.T) {
	calls := 0
	var result servicex.Result[ListResponse]
	task := Mock{}.Fetch(1, 1, func(r servicex.Result[ListResponse]) {
		calls++
		result = r
	})
	assert.Equal(t, 1, calls)
	list, err := result.Get()
	require.NoError(t, err)
	assert.Equal(t, MockListResponse(), list)
	assert.Nil(t, task.Plan())
	select {
	case <-task.Done():
	default:
		t.Fatal("task not done")
	}
	task.Cancel()
	assert.Equal(t, 1, calls)
}
