/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package query implements the query-string codec used by the uri package.
//
// A query body has the shape "key=value&key2=value2". Decode turns such a body
// into Values and Encode turns Values back into the wire form. The default
// Codec passes keys and values through verbatim; FormCodec applies the
// application/x-www-form-urlencoded rules of net/url instead.
package query

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

const (
	pairSeparator     = "&"
	keyValueSeparator = "="
)

// Values maps each query key to a single value. Keys are unique.
type Values map[string]string

// Decode parses a query body into Values.
//
// The body is split on '&' and every pair on its first '='. A pair without
// '=' yields an empty value. When a key occurs more than once the last
// occurrence wins. No percent-decoding is performed.
func Decode(body string) Values {
	v := make(Values)
	for pair := range strings.SplitSeq(body, pairSeparator) {
		key, value, _ := strings.Cut(pair, keyValueSeparator)
		v[key] = value
	}
	return v
}

// Encode serializes v into the "key=value&key2=value2" wire form.
// Keys are written in ascending order; an empty value still renders as "key=".
func Encode(v Values) string {
	if len(v) == 0 {
		return ""
	}
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(v)) {
		if b.Len() > 0 {
			b.WriteString(pairSeparator)
		}
		b.WriteString(k)
		b.WriteString(keyValueSeparator)
		b.WriteString(v[k])
	}
	return b.String()
}

// Encode is a shorthand for the package-level Encode.
func (v Values) Encode() string { return Encode(v) }

// Get returns the value stored for key and whether the key is present.
func (v Values) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

// Clone returns a copy of v. A nil map stays nil.
func (v Values) Clone() Values { return maps.Clone(v) }

// Codec is the verbatim codec backed by Decode and Encode.
type Codec struct{}

// Decode implements uri.QueryCodec.
func (Codec) Decode(body string) Values { return Decode(body) }

// Encode implements uri.QueryCodec.
func (Codec) Encode(v Values) string { return Encode(v) }

// FormCodec decodes and encodes query bodies with net/url form encoding.
// Unlike Codec it percent-decodes on Decode, percent-encodes on Encode and keeps
// the first occurrence of a repeated key. Malformed pairs are skipped.
type FormCodec struct{}

// Decode implements uri.QueryCodec.
func (FormCodec) Decode(body string) Values {
	// ParseQuery keeps every well-formed pair even when it reports an error.
	form, _ := url.ParseQuery(body)
	v := make(Values, len(form))
	for k, vals := range form {
		if len(vals) > 0 {
			v[k] = vals[0]
		}
	}
	return v
}

// Encode implements uri.QueryCodec.
func (FormCodec) Encode(v Values) string {
	form := make(url.Values, len(v))
	for k, val := range v {
		form.Set(k, val)
	}
	return form.Encode()
}
