// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "time"

// A Method is an HTTP request method.
type Method string

// The HTTP methods a Descriptor may use.
const (
	Options Method = "OPTIONS"
	Get     Method = "GET"
	Head    Method = "HEAD"
	Post    Method = "POST"
	Put     Method = "PUT"
	Patch   Method = "PATCH"
	Delete  Method = "DELETE"
	Trace   Method = "TRACE"
	Connect Method = "CONNECT"
)

// Valid reports whether m is one of the nine methods listed above.
func (m Method) Valid() bool {
	switch m {
	case Options, Get, Head, Post, Put, Patch, Delete, Trace, Connect:
		return true
	}
	return false
}

// String returns the method name as sent on the wire.
func (m Method) String() string {
	return string(m)
}

// A CachePolicy tells the transport session how it may use cached
// responses when carrying out a request.
type CachePolicy int

const (
	// UseProtocolCachePolicy defers to the caching rules of the
	// protocol. The session adds no cache directives.
	UseProtocolCachePolicy CachePolicy = iota
	// ReloadIgnoringLocalCacheData always loads from the origin.
	ReloadIgnoringLocalCacheData
	// ReloadIgnoringLocalAndRemoteCacheData always loads from the
	// origin, and asks intermediaries not to answer from their caches.
	ReloadIgnoringLocalAndRemoteCacheData
	// ReturnCacheDataElseLoad accepts any cached response, however
	// stale, and loads from the origin only if there is none.
	ReturnCacheDataElseLoad
	// ReturnCacheDataDontLoad accepts only cached responses.
	ReturnCacheDataDontLoad
	// ReloadRevalidatingCacheData requires cached responses to be
	// revalidated with the origin before use.
	ReloadRevalidatingCacheData
	cachePolicySentinel
)

var cachePolicyNames = []string{
	"UseProtocolCachePolicy",
	"ReloadIgnoringLocalCacheData",
	"ReloadIgnoringLocalAndRemoteCacheData",
	"ReturnCacheDataElseLoad",
	"ReturnCacheDataDontLoad",
	"ReloadRevalidatingCacheData",
}

// String returns the name of the cache policy.
func (cp CachePolicy) String() string {
	if cp < 0 || cp >= cachePolicySentinel {
		return "CachePolicy(invalid)"
	}
	return cachePolicyNames[cp]
}

// ParseCachePolicy returns the cache policy whose name is s.
func ParseCachePolicy(s string) (CachePolicy, bool) {
	for i, name := range cachePolicyNames {
		if name == s {
			return CachePolicy(i), true
		}
	}
	return 0, false
}

// A Descriptor is a declarative description of one HTTP request
// against a specific endpoint.
//
// Only URLHost and URLPath have no sensible default. Concrete
// descriptors embed Defaults to obtain every other method and then
// override only what varies for their endpoint:
//
//	type ListRequest struct {
//		request.Defaults
//		Host         string
//		Batch, Limit int
//	}
//
//	func (r ListRequest) URLHost() string { return r.Host }
//	func (r ListRequest) URLPath() string { return "/api/v1/Wikis/List" }
//
// A Descriptor has no side effects. Use Materialize to turn it into a
// Plan a transport session can carry out.
type Descriptor interface {
	// URLScheme is the URL scheme, "https" by default.
	URLScheme() string
	// URLHost is the host, with optional port.
	URLHost() string
	// URLPath is the absolute URL path.
	URLPath() string
	// HTTPMethod is the request method, Get by default.
	HTTPMethod() Method
	// HTTPHeaders are the request header fields. Nil by default.
	HTTPHeaders() map[string]string
	// URLParams are the query parameters. Nil by default.
	URLParams() map[string]string
	// JSONBody is a value to be serialized as the JSON request body.
	// When non-nil it takes precedence over StringBody.
	JSONBody() interface{}
	// StringBody is a raw text body, used only when JSONBody is nil.
	StringBody() (string, bool)
	// CachePolicy is ReturnCacheDataElseLoad by default.
	CachePolicy() CachePolicy
	// TimeoutInterval is 10 seconds by default.
	TimeoutInterval() time.Duration
	// AllowsMeteredAccess is true by default.
	AllowsMeteredAccess() bool
}

// DefaultTimeout is the TimeoutInterval supplied by Defaults.
const DefaultTimeout = 10 * time.Second

// Defaults supplies the default value of every Descriptor method other
// than URLHost and URLPath. Embed it in a concrete descriptor.
type Defaults struct{}

// URLScheme returns "https".
func (Defaults) URLScheme() string { return "https" }

// HTTPMethod returns Get.
func (Defaults) HTTPMethod() Method { return Get }

// HTTPHeaders returns nil.
func (Defaults) HTTPHeaders() map[string]string { return nil }

// URLParams returns nil.
func (Defaults) URLParams() map[string]string { return nil }

// JSONBody returns nil.
func (Defaults) JSONBody() interface{} { return nil }

// StringBody reports no string body.
func (Defaults) StringBody() (string, bool) { return "", false }

// CachePolicy returns ReturnCacheDataElseLoad.
func (Defaults) CachePolicy() CachePolicy { return ReturnCacheDataElseLoad }

// TimeoutInterval returns DefaultTimeout.
func (Defaults) TimeoutInterval() time.Duration { return DefaultTimeout }

// AllowsMeteredAccess returns true.
func (Defaults) AllowsMeteredAccess() bool { return true }
