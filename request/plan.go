// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	urlpkg "net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "servicex/request: nil context"
)

// A Plan is a transport-ready HTTP request derived from a Descriptor
// by Materialize.
//
// The field structure of Plan mirrors the structure of the lower-level
// http.Request, plus the transport hints a Descriptor carries (cache
// policy, timeout and metered access). A Plan is never mutated by this
// library after Materialize returns it, and callers should treat it as
// read-only too.
//
// Like the http.Request structure, a Plan has a context. The transport
// session derives each transfer's context from it, so cancelling the
// plan context cancels any transfer carrying out the plan.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	Method string

	// URL is the absolute request URL, including the query string.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body should be sent.
	Body []byte

	// CachePolicy tells the session how it may use cached responses.
	CachePolicy CachePolicy

	// Timeout bounds the whole transfer. Zero means no timeout.
	Timeout time.Duration

	// AllowsMeteredAccess records whether the descriptor permits the
	// transfer over a metered network. Sessions which cannot tell
	// metered from unmetered networks ignore it.
	AllowsMeteredAccess bool

	// ctx allows the transfer to be cancelled. It should only be
	// modified by copying the whole Plan using WithContext.
	ctx context.Context
}

// Context returns the plan's context. The returned context is always
// non-nil; it defaults to the background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// ToRequest creates an HTTP request corresponding to the plan. The
// context of the new request is set to ctx, which may not be nil.
//
// The plan's cache policy is expressed as Cache-Control (and Pragma)
// request directives unless the plan header already sets
// Cache-Control. The plan header itself is never modified.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	r.URL = p.URL
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Host = p.URL.Host
	r.Header = p.wireHeader()
	return r
}

// wireHeader returns the header as sent: the plan header plus the
// cache directives of the plan's cache policy. The plan header is
// cloned rather than modified when directives are added.
func (p *Plan) wireHeader() http.Header {
	d := cacheDirectives(p.CachePolicy)
	if d == "" || p.Header.Get("Cache-Control") != "" {
		return p.Header
	}
	h := p.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set("Cache-Control", d)
	if p.CachePolicy == ReloadIgnoringLocalAndRemoteCacheData {
		h.Set("Pragma", "no-cache")
	}
	return h
}

func cacheDirectives(cp CachePolicy) string {
	switch cp {
	case ReloadIgnoringLocalCacheData, ReloadIgnoringLocalAndRemoteCacheData:
		return "no-cache"
	case ReturnCacheDataElseLoad:
		return "max-stale"
	case ReturnCacheDataDontLoad:
		return "only-if-cached"
	case ReloadRevalidatingCacheData:
		return "max-age=0"
	default:
		return ""
	}
}

// Curl renders the plan as an equivalent curl command line, for
// debugging only.
//
// The command contains the quoted absolute URL, --head for a HEAD
// request, -X for any method other than GET and HEAD, one -H per
// header field in sorted order (including the cache directives
// ToRequest adds), and -d when the body is non-empty UTF-8 text. The
// Cookie header is never rendered. Parts are separated by a line
// break and a tab.
func (p *Plan) Curl() string {
	base := "curl " + shellQuote(p.URL.String())
	if p.Method == string(Head) {
		base += " --head"
	}

	command := []string{base}

	if p.Method != string(Get) && p.Method != string(Head) {
		command = append(command, "-X "+p.Method)
	}

	h := p.wireHeader()
	keys := make([]string, 0, len(h))
	for k := range h {
		if http.CanonicalHeaderKey(k) != "Cookie" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			command = append(command, "-H "+shellQuote(k+": "+v))
		}
	}

	if len(p.Body) > 0 && utf8.Valid(p.Body) {
		command = append(command, "-d "+shellQuote(string(p.Body)))
	}

	return strings.Join(command, " \n\t ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
