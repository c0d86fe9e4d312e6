// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/transient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(r *http.Request) (*http.Response, error) {
	args := m.Called(r)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

type stats struct {
	Articles int `json:"articles"`
	Pages    int `json:"pages"`
	Videos   int `json:"videos"`
}

func collect[T any](t *testing.T, ch <-chan servicex.Result[T]) []servicex.Result[T] {
	var results []servicex.Result[T]
	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-timer.C:
			t.Fatal("stream did not close")
			return nil
		}
	}
}

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stats":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"articles":3,"pages":5,"videos":10}`))
		case "/slow":
			<-r.Context().Done()
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`not json`))
		}
	}))
}

func TestResponse(t *testing.T) {
	server := newServer()
	defer server.Close()

	req, err := http.NewRequest("GET", server.URL+"/stats", nil)
	require.NoError(t, err)
	results := collect(t, Response(context.Background(), server.Client(), req))
	require.Len(t, results, 1)
	p, err := results[0].Get()
	require.NoError(t, err)
	assert.Equal(t, 200, p.StatusCode)
	assert.Equal(t, "application/json", p.Header.Get("Content-Type"))
	assert.Equal(t, `{"articles":3,"pages":5,"videos":10}`, string(p.Body))
}

func TestDecode(t *testing.T) {
	server := newServer()
	defer server.Close()

	t.Run("value", func(t *testing.T) {
		req, err := http.NewRequest("GET", server.URL+"/stats", nil)
		require.NoError(t, err)
		results := collect(t, Decode[stats](context.Background(), server.Client(), req, codec.Default))
		require.Len(t, results, 1)
		v, err := results[0].Get()
		require.NoError(t, err)
		assert.Equal(t, stats{Articles: 3, Pages: 5, Videos: 10}, v)
	})
	t.Run("decode error", func(t *testing.T) {
		req, err := http.NewRequest("GET", server.URL+"/missing", nil)
		require.NoError(t, err)
		results := collect(t, Decode[stats](context.Background(), server.Client(), req, codec.Default))
		require.Len(t, results, 1)
		var decodeErr *servicex.DecodeError
		assert.True(t, errors.As(results[0].Err(), &decodeErr))
	})
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequest("GET", server.URL+"/slow", nil)
		require.NoError(t, err)
		ch := Decode[stats](ctx, server.Client(), req, codec.Default)
		cancel()
		results := collect(t, ch)
		require.Len(t, results, 1)
		var transportErr *servicex.TransportError
		require.True(t, errors.As(results[0].Err(), &transportErr))
		assert.Equal(t, transient.Cancelled, transportErr.Category())
	})
}

func TestVoid(t *testing.T) {
	server := newServer()
	defer server.Close()

	t.Run("any status", func(t *testing.T) {
		req, err := http.NewRequest("GET", server.URL+"/missing", nil)
		require.NoError(t, err)
		results := collect(t, Void(context.Background(), server.Client(), req))
		require.Len(t, results, 1)
		assert.True(t, results[0].IsValue())
	})
	t.Run("transport error", func(t *testing.T) {
		doer := &mockDoer{}
		doer.Test(t)
		doer.On("Do", mock.Anything).Return(nil, errors.New("foo")).Once()
		req, err := http.NewRequest("GET", "http://example.com", nil)
		require.NoError(t, err)
		results := collect(t, Void(context.Background(), doer, req))
		require.Len(t, results, 1)
		var transportErr *servicex.TransportError
		require.True(t, errors.As(results[0].Err(), &transportErr))
		assert.EqualError(t, transportErr.Err, "foo")
		doer.AssertExpectations(t)
	})
}

func TestPanics(t *testing.T) {
	req, err := http.NewRequest("GET", "http://example.com", nil)
	require.NoError(t, err)
	assert.PanicsWithValue(t, "servicex/stream: nil request", func() {
		Void(context.Background(), nil, nil)
	})
	var nilCtx context.Context
	assert.PanicsWithValue(t, "servicex/stream: nil context", func() {
		Void(nilCtx, nil, req)
	})
}
