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

import "strings"

const (
	schemeDelim    = ":"
	authorityStart = "//"
	userinfoDelim  = "@"
	passwordDelim  = ":"
	portDelim      = ":"
	ipLiteralEnd   = "]"
	queryDelim     = "?"
	fragmentDelim  = "#"

	// authorityEnd lists the delimiters that may close an authority.
	authorityEnd = "/?#"
	// pathEnd lists the delimiters that may close a path.
	pathEnd = "?#"
)

// indexAny returns the index of the leftmost byte of s that is one of delims,
// or -1 if none occurs. The leftmost occurrence always wins, whatever the
// delimiter is.
func indexAny(s, delims string) int {
	return strings.IndexAny(s, delims)
}

// cutAny slices s around the leftmost delimiter from delims. The delimiter is
// kept at the start of after so the next stage can still see it. found is
// false and after is empty when no delimiter occurs.
func cutAny(s, delims string) (before, after string, found bool) {
	i := indexAny(s, delims)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i:], true
}

// startsWithAny reports whether s is non-empty and starts with one of delims.
func startsWithAny(s, delims string) bool {
	return s != "" && strings.IndexByte(delims, s[0]) >= 0
}
