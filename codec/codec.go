// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	jsoniter "github.com/json-iterator/go"
)

// Default is the codec used whenever a component is not given one
// explicitly. It is compatible with encoding/json.
var Default = New(jsoniter.ConfigCompatibleWithStandardLibrary)

// A Codec encodes Go values to JSON and decodes JSON into Go values.
// A Codec is safe for concurrent use by multiple goroutines.
type Codec struct {
	api jsoniter.API
}

// New returns a codec which uses api for all conversions. It panics
// if api is nil.
func New(api jsoniter.API) Codec {
	if api == nil {
		panic("servicex/codec: nil api")
	}
	return Codec{api: api}
}

// Encode returns the JSON encoding of v.
func (c Codec) Encode(v interface{}) ([]byte, error) {
	return c.resolve().Marshal(v)
}

// Decode parses the JSON-encoded data and stores the result in the
// value pointed to by v.
func (c Codec) Decode(data []byte, v interface{}) error {
	return c.resolve().Unmarshal(data, v)
}

func (c Codec) resolve() jsoniter.API {
	if c.api == nil {
		return Default.api
	}
	return c.api
}
