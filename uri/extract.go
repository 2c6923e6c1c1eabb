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

package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// The extractors below each consume a prefix of the remaining input and return
// the untouched suffix for the next stage. An empty suffix means there is
// nothing left to parse: a real remainder always begins with the delimiter
// that ended the previous component, so it is never empty.

// extractScheme splits s at its first ':'. The colon belongs to neither part.
func extractScheme(s string) (scheme, rest string, err error) {
	scheme, rest, ok := strings.Cut(s, schemeDelim)
	if !ok {
		return "", "", errtrace.Wrap(newParseError(ErrSchemeMissing, s))
	}
	return scheme, rest, nil
}

// extractAuthority reads the "//authority" part of the post-scheme remainder.
//
// When s does not start with "//" there is no authority: ok is false and rest
// is the whole of s, which then holds the path, query and fragment. Otherwise
// the authority ends at the leftmost '/', '?' or '#', and rest starts with that
// delimiter.
func extractAuthority(s string) (authority string, ok bool, rest string, err error) {
	if s == "" {
		return "", false, "", errtrace.Wrap(newParseError(ErrEmptyRemainder, ""))
	}
	after, found := strings.CutPrefix(s, authorityStart)
	if !found {
		return "", false, s, nil
	}
	authority, rest, _ = cutAny(after, authorityEnd)
	return authority, true, rest, nil
}

// extractPath reads the path up to the leftmost '?' or '#'. The delimiter stays
// at the start of rest.
func extractPath(s string) (path, rest string, err error) {
	if s == "" {
		return "", "", errtrace.Wrap(newParseError(ErrEmptyRemainder, ""))
	}
	path, rest, _ = cutAny(s, pathEnd)
	return path, rest, nil
}

// extractQuery reads the query body that follows the path. A leading '?' is
// consumed and the body ends at the first '#', which stays at the start of
// rest. An empty body means the URI has no query.
func extractQuery(s string) (body, rest string) {
	if s == "" {
		return "", ""
	}
	s = strings.TrimPrefix(s, queryDelim)
	if i := strings.Index(s, fragmentDelim); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// extractFragment returns the text after the first '#' of s.
func extractFragment(s string) (string, error) {
	if s == "" {
		return "", errtrace.Wrap(newParseError(ErrEmptyRemainder, ""))
	}
	_, fragment, ok := strings.Cut(s, fragmentDelim)
	if !ok {
		return "", errtrace.Wrap(newParseError(ErrFragmentMissing, s))
	}
	return fragment, nil
}
