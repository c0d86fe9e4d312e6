// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gogama/servicex/codec"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/transient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDescriptor struct {
	request.Defaults
	host    string
	path    string
	method  request.Method
	body    string
	timeout time.Duration
}

func (d testDescriptor) URLScheme() string { return "http" }
func (d testDescriptor) URLHost() string   { return d.host }
func (d testDescriptor) URLPath() string   { return d.path }
func (d testDescriptor) HTTPMethod() request.Method {
	if d.method == "" {
		return request.Get
	}
	return d.method
}
func (d testDescriptor) StringBody() (string, bool) { return d.body, d.body != "" }
func (d testDescriptor) TimeoutInterval() time.Duration {
	if d.timeout == 0 {
		return request.DefaultTimeout
	}
	return d.timeout
}

func newPlan(t *testing.T, server *httptest.Server, d testDescriptor) *request.Plan {
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	d.host = u.Host
	p, err := request.Materialize(d, codec.Default)
	require.NoError(t, err)
	return p
}

func await(t *testing.T, task Task) {
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("transfer did not complete")
	}
}

func TestHTTPSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/echo":
			b, _ := io.ReadAll(r.Body)
			w.Header().Set("X-Method", r.Method)
			_, _ = w.Write(b)
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/cache":
			_, _ = w.Write([]byte(r.Header.Get("Cache-Control")))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()
	s := &HTTPSession{HTTPDoer: server.Client()}

	t.Run("body and status", func(t *testing.T) {
		var o Outcome
		task := s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/echo", method: request.Put, body: "ham"}), func(x Outcome) {
			o = x
		})
		await(t, task)
		assert.NoError(t, o.Err)
		assert.Equal(t, 200, o.StatusCode)
		assert.Equal(t, "ham", string(o.Body))
		assert.NotEqual(t, task.ID().String(), "")
		assert.Equal(t, "PUT", task.Plan().Method)
	})
	t.Run("empty body is not absent", func(t *testing.T) {
		var o Outcome
		await(t, s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/empty"}), func(x Outcome) {
			o = x
		}))
		assert.NoError(t, o.Err)
		assert.Equal(t, 204, o.StatusCode)
		assert.NotNil(t, o.Body)
		assert.Empty(t, o.Body)
	})
	t.Run("non-2XX status is not an error", func(t *testing.T) {
		var o Outcome
		await(t, s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/missing"}), func(x Outcome) {
			o = x
		}))
		assert.NoError(t, o.Err)
		assert.Equal(t, 404, o.StatusCode)
	})
	t.Run("cache policy directive", func(t *testing.T) {
		var o Outcome
		await(t, s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/cache"}), func(x Outcome) {
			o = x
		}))
		require.NoError(t, o.Err)
		assert.Equal(t, "max-stale", string(o.Body))
	})
	t.Run("timeout", func(t *testing.T) {
		var o Outcome
		await(t, s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/slow", timeout: 50 * time.Millisecond}), func(x Outcome) {
			o = x
		}))
		require.Error(t, o.Err)
		assert.IsType(t, &url.Error{}, o.Err)
		assert.Equal(t, transient.Timeout, transient.Categorize(o.Err))
		assert.Nil(t, o.Body)
		assert.Equal(t, 0, o.StatusCode)
	})
	t.Run("cancel in flight", func(t *testing.T) {
		calls := 0
		var o Outcome
		task := s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/slow"}), func(x Outcome) {
			calls++
			o = x
		})
		task.Cancel()
		await(t, task)
		assert.Equal(t, 1, calls)
		assert.Equal(t, transient.Cancelled, transient.Categorize(o.Err))
	})
	t.Run("cancel after completion", func(t *testing.T) {
		calls := 0
		task := s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/echo"}), func(x Outcome) {
			calls++
		})
		await(t, task)
		assert.NotPanics(t, task.Cancel)
		assert.NotPanics(t, task.Cancel)
		assert.Equal(t, 1, calls)
	})
	t.Run("plan context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var o Outcome
		await(t, s.BeginTransfer(newPlan(t, server, testDescriptor{path: "/echo"}).WithContext(ctx), func(x Outcome) {
			o = x
		}))
		assert.Equal(t, transient.Cancelled, transient.Categorize(o.Err))
	})
	t.Run("nil arguments", func(t *testing.T) {
		p := newPlan(t, server, testDescriptor{path: "/echo"})
		assert.PanicsWithValue(t, "servicex/session: nil plan", func() { s.BeginTransfer(nil, func(Outcome) {}) })
		assert.PanicsWithValue(t, "servicex/session: nil callback", func() { s.BeginTransfer(p, nil) })
	})
}

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(r *http.Request) (*http.Response, error) {
	args := m.Called(r)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) { return 0, errors.New("foo") }

func TestHTTPSessionDoer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	t.Run("doer error is wrapped", func(t *testing.T) {
		m := &mockDoer{}
		m.On("Do", mock.Anything).Return(nil, errors.New("bar")).Once()
		var o Outcome
		p := newPlan(t, server, testDescriptor{path: "/x", method: request.Delete})
		await(t, (&HTTPSession{HTTPDoer: m}).BeginTransfer(p, func(x Outcome) { o = x }))
		var urlErr *url.Error
		require.True(t, errors.As(o.Err, &urlErr))
		assert.Equal(t, "Delete", urlErr.Op)
		assert.Equal(t, p.URL.String(), urlErr.URL)
		assert.EqualError(t, urlErr.Err, "bar")
		m.AssertExpectations(t)
	})
	t.Run("url error is not rewrapped", func(t *testing.T) {
		m := &mockDoer{}
		expected := &url.Error{Op: "Get", URL: "ham", Err: errors.New("eggs")}
		m.On("Do", mock.Anything).Return(nil, expected).Once()
		var o Outcome
		await(t, (&HTTPSession{HTTPDoer: m}).BeginTransfer(newPlan(t, server, testDescriptor{path: "/x"}), func(x Outcome) { o = x }))
		assert.Same(t, expected, o.Err)
	})
	t.Run("body read error", func(t *testing.T) {
		m := &mockDoer{}
		m.On("Do", mock.MatchedBy(func(r *http.Request) bool {
			return r.Method == "GET" && strings.HasSuffix(r.URL.Path, "/y")
		})).Return(&http.Response{StatusCode: 200, Body: io.NopCloser(failingReader{})}, nil).Once()
		var o Outcome
		await(t, (&HTTPSession{HTTPDoer: m}).BeginTransfer(newPlan(t, server, testDescriptor{path: "/y"}), func(x Outcome) { o = x }))
		assert.Error(t, o.Err)
		assert.Equal(t, 200, o.StatusCode)
		assert.Nil(t, o.Body)
		m.AssertExpectations(t)
	})
}

func TestHTTPSessionCloseIdleConnections(t *testing.T) {
	assert.NotPanics(t, func() { (&HTTPSession{}).CloseIdleConnections() })
	assert.NotPanics(t, func() { (&HTTPSession{HTTPDoer: &mockDoer{}}).CloseIdleConnections() })
}

func TestComplete(t *testing.T) {
	calls := 0
	o := Outcome{Body: []byte("foo"), StatusCode: 200}
	var got Outcome
	task := Complete(nil, o, func(x Outcome) {
		calls++
		got = x
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, o, got)
	assert.Nil(t, task.Plan())
	select {
	case <-task.Done():
	default:
		t.Fatal("task not done")
	}
	assert.NotPanics(t, task.Cancel)
}

func TestSessionFunc(t *testing.T) {
	var s Session = SessionFunc(func(p *request.Plan, cb Callback) Task {
		return Complete(p, Outcome{StatusCode: 200}, cb)
	})
	var got Outcome
	s.BeginTransfer(nil, func(o Outcome) { got = o })
	assert.Equal(t, 200, got.StatusCode)
}
