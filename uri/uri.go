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

// Package uri decomposes generic URIs into their components and builds URIs
// back from components, following the generic syntax of RFC 3986, Section 3.
//
// Parsing is permissive and best-effort. No component is percent-decoded or
// percent-encoded, and no scheme-specific grammar is enforced: values are kept
// exactly as they appear in the input. The query component is the exception,
// since it is handed to a QueryCodec; the default query.Codec is verbatim too.
//
// The parse pipeline runs a fixed sequence of stages over disjoint spans of
// the input, from left to right and without backtracking:
//
//	scheme ":" ["//" authority] path ["?" query] ["#" fragment]
//
// Build is the inverse of Parse: building components and parsing the result
// yields equal components, as long as the query codec does not lose
// information (see package query).
package uri

import (
	"maps"

	"github.com/jplu/uriparts/query"
)

// Components holds the parts of a parsed URI. Optional parts are nil when
// absent; Path is always present and may be empty.
type Components struct {
	// Scheme is the text before the first ':' of the URI.
	Scheme string `json:"scheme"`
	// Authority is nil unless the text after the scheme starts with "//".
	Authority *Authority `json:"authority,omitempty"`
	Path      string     `json:"path"`
	// Query is nil when the URI has no query or an empty one.
	Query query.Values `json:"query,omitempty"`
	// Fragment excludes the leading '#'.
	Fragment *string `json:"fragment,omitempty"`
}

// Fragment returns a pointer to s, for use in Components literals.
func Fragment(s string) *string {
	return &s
}

// Clone returns a deep copy of c.
func (c *Components) Clone() *Components {
	if c == nil {
		return nil
	}
	return &Components{
		Scheme:    c.Scheme,
		Authority: c.Authority.Clone(),
		Path:      c.Path,
		Query:     maps.Clone(c.Query),
		Fragment:  clonePtr(c.Fragment),
	}
}

// Equal reports whether c and other are structurally equal. A nil query and an
// empty one are different, as are a nil fragment and an empty one.
func (c *Components) Equal(other *Components) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Scheme == other.Scheme &&
		c.Authority.Equal(other.Authority) &&
		c.Path == other.Path &&
		(c.Query == nil) == (other.Query == nil) &&
		maps.Equal(c.Query, other.Query) &&
		equalPtr(c.Fragment, other.Fragment)
}

// String returns the URI built from c with the default query codec.
func (c *Components) String() string {
	s, err := Build(c)
	if err != nil {
		return ""
	}
	return s
}
