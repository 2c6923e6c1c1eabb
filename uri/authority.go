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
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"
)

// Authority is the "//"-prefixed component of a URI.
type Authority struct {
	// UserInfo is nil when the authority has no '@'.
	UserInfo *UserInfo `json:"userinfo,omitempty"`
	// Host keeps the brackets of an IP literal, e.g. "[2001:db8::1]".
	Host string `json:"host"`
	// Port is nil when the authority has no port.
	Port *uint64 `json:"port,omitempty"`
}

// UserInfo holds the "username[:password]" segment of an authority.
type UserInfo struct {
	Username string `json:"username"`
	// Password is nil when the userinfo has no ':'.
	Password *string `json:"password,omitempty"`
}

// User returns a UserInfo with the given username and no password.
func User(username string) *UserInfo {
	return &UserInfo{Username: username}
}

// UserPassword returns a UserInfo with the given username and password.
func UserPassword(username, password string) *UserInfo {
	return &UserInfo{Username: username, Password: &password}
}

// Port returns a pointer to n, for use in Authority literals.
func Port(n uint64) *uint64 {
	return &n
}

// ParseAuthority decomposes an authority string (the text between "//" and the
// next '/', '?' or '#') into userinfo, host and port. An empty string yields an
// Authority with an empty host.
func ParseAuthority(s string) (*Authority, error) {
	a := &Authority{}
	if s == "" {
		return a, nil
	}

	a.UserInfo, s = splitUserinfo(s)

	host, port, hasPort := splitHost(s)
	a.Host = host
	if hasPort {
		n, err := parsePort(port)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		a.Port = &n
	}
	return a, nil
}

// splitUserinfo cuts the userinfo off the front of an authority at the first '@'.
// rest is the host and port material.
func splitUserinfo(authority string) (ui *UserInfo, rest string) {
	userinfo, rest, ok := strings.Cut(authority, userinfoDelim)
	if !ok {
		return nil, authority
	}
	if username, password, ok := strings.Cut(userinfo, passwordDelim); ok {
		return UserPassword(username, password), rest
	}
	return User(userinfo), rest
}

// splitHost separates the host from the port. An IP literal host runs through
// the first ']', and the port is whatever follows a ':' after it. Any other host
// ends at the first ':'. port excludes the ':' itself.
func splitHost(hostport string) (host, port string, hasPort bool) {
	if i := strings.Index(hostport, ipLiteralEnd); i >= 0 {
		host = hostport[:i+1]
		_, port, hasPort = strings.Cut(hostport[i+1:], portDelim)
		return host, port, hasPort
	}
	return strings.Cut(hostport, portDelim)
}

// parsePort parses a port as a base-10 unsigned integer. No range check is done.
func parsePort(port string) (uint64, error) {
	n, err := strconv.ParseUint(port, 10, 64)
	if err != nil {
		return 0, errtrace.Wrap(&ParseError{Kind: ErrPortNotNumeric, Input: port, Err: err})
	}
	return n, nil
}

// ASCIIHost returns the host in its IDNA ASCII form, e.g. "xn--bcher-kva.example"
// for "bücher.example". IP literals and empty hosts are returned unchanged.
// The stored Host is never modified.
func (a *Authority) ASCIIHost() (string, error) {
	if a == nil {
		return "", nil
	}
	if a.Host == "" || strings.HasPrefix(a.Host, "[") {
		return a.Host, nil
	}
	host, err := idna.Lookup.ToASCII(a.Host)
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("idna: %w", err))
	}
	return host, nil
}

// String renders the authority without the leading "//".
func (a *Authority) String() string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	_, _ = writeAuthority(&b, a)
	return b.String()
}

// Equal reports whether a and other hold the same userinfo, host and port.
func (a *Authority) Equal(other *Authority) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Host == other.Host &&
		equalPtr(a.Port, other.Port) &&
		a.UserInfo.Equal(other.UserInfo)
}

// Clone returns a deep copy of a.
func (a *Authority) Clone() *Authority {
	if a == nil {
		return nil
	}
	return &Authority{
		UserInfo: a.UserInfo.Clone(),
		Host:     a.Host,
		Port:     clonePtr(a.Port),
	}
}

// Equal reports whether u and other hold the same username and password.
func (u *UserInfo) Equal(other *UserInfo) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Username == other.Username && equalPtr(u.Password, other.Password)
}

// Clone returns a deep copy of u.
func (u *UserInfo) Clone() *UserInfo {
	if u == nil {
		return nil
	}
	return &UserInfo{Username: u.Username, Password: clonePtr(u.Password)}
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
